package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linnaea/pathclass/pkg/module"
)

func echoPath() (http.Handler, *string) {
	var path string
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}), &path
}

func TestModuleStripsPrefix(t *testing.T) {
	inner, seen := echoPath()
	m := module.New("/api", inner)

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/pathways/classify", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if *seen != "/pathways/classify" {
		t.Errorf("inner path: got %q, want /pathways/classify", *seen)
	}
}

func TestModuleRootPath(t *testing.T) {
	inner, seen := echoPath()
	m := module.New("/api", inner)

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api", nil))

	if *seen != "/" {
		t.Errorf("inner path: got %q, want /", *seen)
	}
}

func TestModuleMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	inner, _ := echoPath()
	m := module.New("/api", inner)
	m.Use(tag("first"))
	m.Use(tag("second"))

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/x", nil))

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("middleware order: got %v", order)
	}
}

func TestNewPanicsOnBadPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"no leading slash", "api"},
		{"multi-level", "/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", tt.prefix)
				}
			}()
			module.New(tt.prefix, http.NotFoundHandler())
		})
	}
}

func TestRouterDispatch(t *testing.T) {
	inner, seen := echoPath()
	router := module.NewRouter()
	router.Mount(module.New("/api", inner))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/pathways", nil))
	if rec.Code != http.StatusOK || *seen != "/pathways" {
		t.Errorf("module dispatch: code %d, path %q", rec.Code, *seen)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("native dispatch: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unmatched path: got %d", rec.Code)
	}
}

func TestRouterTrailingSlash(t *testing.T) {
	inner, seen := echoPath()
	router := module.NewRouter()
	router.Mount(module.New("/api", inner))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/pathways/", nil))

	if *seen != "/pathways" {
		t.Errorf("normalized path: got %q", *seen)
	}
}
