package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/api"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-record-book/internal/shared/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	// сервисы нулевые: тесты ниже не доходят до хендлеров
	h := api.NewHandler(nil, logger.NewHTTPLogger(), middleware.NewJWTVerifier(nil))
	return NewRouter(h)
}

func TestNewRouter_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t)

	r, ok := router.(chi.Router)
	if !ok {
		t.Fatalf("router does not implement chi.Router")
	}

	got := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}

	want := []string{
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/refresh",
		"GET /auth/me",
		"POST /auth/logout",
		"GET /record/",
		"POST /record/",
		"GET /record/{id}",
		"GET /record/{id}/edit",
		"PUT /record/{id}/edit",
		"PATCH /record/{id}/edit",
		"DELETE /record/{id}",
	}
	for _, route := range want {
		if !got[route] {
			t.Errorf("route %q is not registered", route)
		}
	}
}

func TestNewRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/auth/logout"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tt.method, tt.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "missing bearer token") {
			t.Errorf("%s %s: body = %q, want missing bearer token", tt.method, tt.path, rec.Body.String())
		}
	}
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
