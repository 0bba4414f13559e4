package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func corsHeaders(rec *httptest.ResponseRecorder) (origin, methods, headers, credentials string) {
	h := rec.Header()
	return h.Get(echo.HeaderAccessControlAllowOrigin),
		h.Get(echo.HeaderAccessControlAllowMethods),
		h.Get(echo.HeaderAccessControlAllowHeaders),
		h.Get(echo.HeaderAccessControlAllowCredentials)
}

func runCORS(t *testing.T, allowed []string, method, path, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	if origin != "" {
		req.Header.Set(echo.HeaderOrigin, origin)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := CORS(allowed)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestCORS_PreflightShortCircuit(t *testing.T) {
	rec, called := runCORS(t, nil, http.MethodOptions, "/api/users", "http://localhost:5173")

	if called {
		t.Fatalf("pre-flight must not reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	origin, methods, headers, credentials := corsHeaders(rec)
	if origin != "http://localhost:5173" {
		t.Fatalf("expected origin echo, got %q", origin)
	}
	if methods != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Fatalf("unexpected methods: %q", methods)
	}
	if headers != "Content-Type, Authorization" {
		t.Fatalf("unexpected headers: %q", headers)
	}
	if credentials != "true" {
		t.Fatalf("unexpected credentials: %q", credentials)
	}
}

func TestCORS_NoOriginGetsWildcard(t *testing.T) {
	rec, called := runCORS(t, nil, http.MethodGet, "/api/users", "")

	if !called {
		t.Fatalf("non-preflight request must reach the handler")
	}
	origin, _, _, _ := corsHeaders(rec)
	if origin != "*" {
		t.Fatalf("expected wildcard for absent origin, got %q", origin)
	}
}

func TestCORS_NonAPIPathUntouched(t *testing.T) {
	rec, called := runCORS(t, nil, http.MethodGet, "/health", "http://localhost:5173")

	if !called {
		t.Fatalf("non-API request must reach the handler")
	}
	origin, methods, headers, credentials := corsHeaders(rec)
	if origin != "" || methods != "" || headers != "" || credentials != "" {
		t.Fatalf("non-API path must receive no CORS headers")
	}
}

func TestCORS_PinnedOrigins(t *testing.T) {
	allowed := []string{"https://app.example.com"}

	rec, _ := runCORS(t, allowed, http.MethodGet, "/api/users", "https://app.example.com")
	origin, _, _, _ := corsHeaders(rec)
	if origin != "https://app.example.com" {
		t.Fatalf("trusted origin must be echoed, got %q", origin)
	}

	// An untrusted origin still passes through, just without the echo.
	rec, called := runCORS(t, allowed, http.MethodGet, "/api/users", "https://evil.example.com")
	if !called {
		t.Fatalf("the gate never rejects a request")
	}
	origin, methods, _, _ := corsHeaders(rec)
	if origin != "" {
		t.Fatalf("untrusted origin must not be echoed, got %q", origin)
	}
	if methods == "" {
		t.Fatalf("method allow-list is always attached under /api")
	}
}

func TestCORS_WildcardEntryEchoesAnyOrigin(t *testing.T) {
	rec, _ := runCORS(t, []string{"*"}, http.MethodGet, "/api/prices", "https://anywhere.example.com")

	origin, _, _, _ := corsHeaders(rec)
	if origin != "https://anywhere.example.com" {
		t.Fatalf("wildcard config must echo the caller origin, got %q", origin)
	}
}
