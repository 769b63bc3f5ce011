package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/database"
)

func TestSQLDebugReportsPerRequestQueryCount(t *testing.T) {
	app := fiber.New()
	app.Use(SQLDebug())
	app.Get("/", func(c *fiber.Ctx) error {
		database.SQLLogger.LogQuery("SELECT 1", time.Millisecond, 1, nil)
		database.SQLLogger.LogQuery("SELECT 2", time.Millisecond, 1, nil)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(SQLQueryCountHeader); got != "2" {
		t.Errorf("%s = %q, want %q", SQLQueryCountHeader, got, "2")
	}
}

func TestSQLDebugZeroForQuietRequest(t *testing.T) {
	app := fiber.New()
	app.Use(SQLDebug())
	app.Get("/quiet", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/quiet", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(SQLQueryCountHeader); got != "0" {
		t.Errorf("%s = %q, want %q", SQLQueryCountHeader, got, "0")
	}
}
