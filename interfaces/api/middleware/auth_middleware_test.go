package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/pkg/utils"
)

const testSecret = "middleware-test-secret"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/secure", Protected(testSecret), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.SendString(user.Email)
	})
	return app
}

func signToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateToken(uuid.New(), "Alice", "alice@example.com", testSecret, ttl)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", resp.StatusCode)
	}
}

func TestProtectedAcceptsBearerHeader(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, time.Hour))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}
}

func TestProtectedAcceptsCookie(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: signToken(t, time.Hour)})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, -time.Hour))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", resp.StatusCode)
	}
}

func TestOptionalAllowsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/open", Optional(testSecret), func(c *fiber.Ctx) error {
		if c.Locals("user") != nil {
			return c.SendString("authenticated")
		}
		return c.SendString("anonymous")
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}
}

func TestOptionalIgnoresBadToken(t *testing.T) {
	app := fiber.New()
	app.Get("/open", Optional(testSecret), func(c *fiber.Ctx) error {
		if c.Locals("user") != nil {
			return fiber.ErrInternalServerError
		}
		return c.SendString("anonymous")
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}
}
