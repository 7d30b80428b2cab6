package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequestValidationSetsRequestID(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation(1024)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("Expected an X-Request-ID header")
	}
	if id, ok := c.Get("request_id").(string); !ok || id == "" {
		t.Error("Expected request_id in the context")
	}
}

func TestRequestValidationRejectsLargeBody(t *testing.T) {
	e := echo.New()

	body := strings.NewReader(strings.Repeat("x", 2048))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation(1024)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestRequestValidationAllowsLargeGet(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation(1)(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for GET regardless of limit", rec.Code)
	}
}

func TestAnalysisRateLimit(t *testing.T) {
	e := echo.New()

	handler := AnalysisRateLimit(1)(okHandler)

	first := httptest.NewRecorder()
	if err := handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), first)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	if err := handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), second)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}
