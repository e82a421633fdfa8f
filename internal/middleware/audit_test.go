package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func auditLogLine(t *testing.T, path string, handler fiber.Handler) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New(fiber.Config{ErrorHandler: JSONErrorHandler})
	app.Use(Audit(logger))
	app.Get(path, handler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return line
}

func TestAuditLogsSuccessStatus(t *testing.T) {
	line := auditLogLine(t, "/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	if line["status"] != float64(fiber.StatusCreated) {
		t.Fatalf("logged status = %v, want 201", line["status"])
	}
}

func TestAuditLogsErrorStatus(t *testing.T) {
	line := auditLogLine(t, "/denied", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	})
	if line["status"] != float64(fiber.StatusUnauthorized) {
		t.Fatalf("logged status = %v, want 401", line["status"])
	}
	if line["level"] != "ERROR" {
		t.Fatalf("logged level = %v, want ERROR", line["level"])
	}
}

func TestAuditLogsPlainErrorAsServerError(t *testing.T) {
	line := auditLogLine(t, "/boom", func(c *fiber.Ctx) error {
		return errTest
	})
	if line["status"] != float64(fiber.StatusInternalServerError) {
		t.Fatalf("logged status = %v, want 500", line["status"])
	}
}
