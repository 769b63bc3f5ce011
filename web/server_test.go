package web

import (
	"net/http/httptest"
	"testing"

	"github.com/lacsuuuu/ergin-hardware/config"
)

// The server must be constructible from injected dependencies alone; a
// nil store client and nil cache are fine for routes that touch neither.
func TestNewServerWiresRoutesFromInjectedDeps(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"

	server := NewServer(cfg, nil, nil)

	resp, err := server.app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("GET /api/health = %d, want 200", resp.StatusCode)
	}
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"

	server := NewServer(cfg, nil, nil)

	resp, err := server.app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("GET /api/nope = %d, want 404", resp.StatusCode)
	}
}
