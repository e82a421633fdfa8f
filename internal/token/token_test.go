package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer, err := New(testSecret, 24*time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue("user-1", "9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "9876543210", claims.Phone)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := New(testSecret, time.Hour)
	require.NoError(t, err)

	other, err := New("another-secret-entirely!", time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue("user-1", "9876543210")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.Error(t, err)
}

func TestVerifyRejectsTampering(t *testing.T) {
	issuer, err := New(testSecret, time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue("user-1", "9876543210")
	require.NoError(t, err)

	_, err = issuer.Verify(signed + "x")
	require.Error(t, err)

	_, err = issuer.Verify("not-a-token")
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer, err := New(testSecret, time.Millisecond)
	require.NoError(t, err)

	signed, err := issuer.Issue("user-1", "9876543210")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = issuer.Verify(signed)
	require.Error(t, err)
}

func TestNewRejectsWeakConfig(t *testing.T) {
	_, err := New("short", time.Hour)
	require.Error(t, err)

	_, err = New(testSecret, 0)
	require.Error(t, err)
}
