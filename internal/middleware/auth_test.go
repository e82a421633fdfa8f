package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stay-haven/stay_haven/internal/token"
)

func setupAuthApp(t *testing.T) (*fiber.App, *token.Issuer) {
	t.Helper()

	issuer, err := token.New("test-secret-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("build issuer: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: JSONErrorHandler})
	app.Get("/protected", BearerAuth(issuer), func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		phone, _ := c.Locals("phone").(string)
		return c.JSON(fiber.Map{"userId": uid, "phone": phone})
	})
	return app, issuer
}

func TestBearerAuthMissingHeader(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()

	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("401 body %q is not JSON: %v", payload, err)
	}
	if body["error"] != "missing bearer token" {
		t.Fatalf("401 body = %v", body)
	}
}

func TestBearerAuthInvalidToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestBearerAuthValidToken(t *testing.T) {
	app, issuer := setupAuthApp(t)

	signed, err := issuer.Issue("user-1", "9876543210")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
