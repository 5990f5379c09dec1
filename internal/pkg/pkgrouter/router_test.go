package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
)

type createdResponse struct {
	ID string `json:"id"`
}

func (createdResponse) StatusCode() int { return http.StatusCreated }

func serve(t *testing.T, ro *Router, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	if rec.Body.Len() == 0 {
		return rec, nil
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestRouterWelcomeAndHealth(t *testing.T) {
	ro := NewRouter(&staticGenerator{value: "cid"})

	rec, body := serve(t, ro, http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["message"] != "Welcome to the Product API! Go to /products to see all products." {
		t.Fatalf("unexpected welcome body: %#v", body)
	}

	rec, _ = serve(t, ro, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for health, got %d", rec.Code)
	}
}

func TestRouterNotFoundEnvelope(t *testing.T) {
	ro := NewRouter(nil)

	rec, body := serve(t, ro, http.MethodGet, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["status"] != "fail" || body["message"] != "Can't find /nope on this server!" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/things", func(context.Context, *http.Request) (any, error) { return nil, nil })

	rec, body := serve(t, ro, http.MethodPost, "/things")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if body["status"] != "fail" || body["message"] != "method not allowed" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestRouterEncodesResponses(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/plain", func(context.Context, *http.Request) (any, error) {
		return map[string]int{"n": 1}, nil
	})
	ro.POST("/created", func(context.Context, *http.Request) (any, error) {
		return createdResponse{ID: "x"}, nil
	})
	ro.DELETE("/gone", func(context.Context, *http.Request) (any, error) {
		return nil, nil
	})

	rec, body := serve(t, ro, http.MethodGet, "/plain")
	if rec.Code != http.StatusOK || body["n"] != float64(1) {
		t.Fatalf("unexpected plain response: %d %#v", rec.Code, body)
	}

	rec, body = serve(t, ro, http.MethodPost, "/created")
	if rec.Code != http.StatusCreated || body["id"] != "x" {
		t.Fatalf("unexpected created response: %d %#v", rec.Code, body)
	}

	rec, body = serve(t, ro, http.MethodDelete, "/gone")
	if rec.Code != http.StatusNoContent || body != nil {
		t.Fatalf("unexpected no content response: %d %#v", rec.Code, body)
	}
}

func TestRouterErrorEnvelope(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/missing", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewNotFound("Product")
	})
	ro.GET("/broken", func(context.Context, *http.Request) (any, error) {
		return nil, errors.New("db exploded")
	})
	ro.GET("/server", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewServer(errors.New("secret detail"))
	})

	rec, body := serve(t, ro, http.MethodGet, "/missing")
	if rec.Code != http.StatusNotFound || body["status"] != "fail" || body["message"] != "Product not found" {
		t.Fatalf("unexpected not found response: %d %#v", rec.Code, body)
	}

	for _, path := range []string{"/broken", "/server"} {
		rec, body = serve(t, ro, http.MethodGet, path)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", path, rec.Code)
		}
		if body["status"] != "error" || body["message"] != "Internal server error" {
			t.Fatalf("%s: unexpected body: %#v", path, body)
		}
	}
}

func TestRouterRecoversPanics(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/panic", func(context.Context, *http.Request) (any, error) {
		panic("kaboom")
	})

	rec, body := serve(t, ro, http.MethodGet, "/panic")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["status"] != "error" || body["message"] != "Internal server error" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestRouterRouteMiddleware(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/secured", func(context.Context, *http.Request) (any, error) {
		t.Fatalf("handler must not run without a key")
		return nil, nil
	}, MiddlewareAPIKey(fixedKey("k")))
	ro.GET("/open", func(context.Context, *http.Request) (any, error) {
		return map[string]string{"ok": "yes"}, nil
	})

	rec, _ := serve(t, ro, http.MethodGet, "/secured")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec, _ = serve(t, ro, http.MethodGet, "/open")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected open route to skip auth, got %d", rec.Code)
	}
}
