package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"glowfolio-backend/internal/config"
	"glowfolio-backend/web"
)

func newTestApplication(t *testing.T, enableDatabase bool) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		EnableDatabase:  enableDatabase,
		DBDriver:        "sqlite",
		SQLitePath:      ":memory:",
		SeedDemo:        true,
		Port:            "0",
		Environment:     "test",
		EnableMetrics:   true,
		DefaultTemplate: "default",
		ThumbnailScale:  0.25,
		RenderRateLimit: 100,
		SiteName:        "Glowfolio",
		SiteURL:         "http://kits.test",
	}

	application, err := New(cfg, Options{Templates: web.Templates(), Static: web.Static()})
	if err != nil {
		t.Fatalf("new application: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = application.Shutdown(ctx)
	})
	return application
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestApplicationServesKitsFromDatabase(t *testing.T) {
	router := newTestApplication(t, true).Router()

	cases := []struct {
		path   string
		status int
		want   string
	}{
		{path: "/health", status: http.StatusOK, want: `"status":"healthy"`},
		{path: "/kit/demo", status: http.StatusOK, want: `data-template="default"`},
		{path: "/kit/demo?template=luxury", status: http.StatusOK, want: `data-template="luxury"`},
		{path: "/kit/nobody", status: http.StatusNotFound},
		{path: "/templates", status: http.StatusOK, want: "kit-thumbnail"},
		{path: "/templates/elegant/preview", status: http.StatusOK, want: `data-template="elegant"`},
		{path: "/api/v1/templates", status: http.StatusOK, want: `"id":"v1"`},
		{path: "/api/v1/kits/demo/preview-data", status: http.StatusOK, want: `"username":"demo"`},
		{path: "/static/css/kit.css", status: http.StatusOK, want: "--kit-background"},
		{path: "/metrics", status: http.StatusOK, want: "glowfolio_render_total"},
		{path: "/nope", status: http.StatusNotFound, want: "Route not found"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(router, tc.path)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			if tc.want != "" && !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("response missing %q", tc.want)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Fatalf("request id header missing")
			}
		})
	}
}

func TestApplicationWithoutDatabase(t *testing.T) {
	router := newTestApplication(t, false).Router()

	if rec := get(router, "/kit/demo"); rec.Code != http.StatusNotFound {
		t.Fatalf("kit routes should not exist without a database, got %d", rec.Code)
	}
	if rec := get(router, "/templates"); rec.Code != http.StatusOK {
		t.Fatalf("library should not need a database, got %d", rec.Code)
	}

	rec := postJSON(router, "/api/v1/render", `{"template_id":"aesthetic","data":{"full_name":"Mina"}}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Mina") {
		t.Fatalf("render endpoint failed: %d %s", rec.Code, rec.Body.String())
	}
	if rec := postJSON(router, "/api/v1/kits/demo/render", `{}`); rec.Code != http.StatusNotFound {
		t.Fatalf("profile render should not exist without a database, got %d", rec.Code)
	}
}

func TestApplicationRendersProfileEdits(t *testing.T) {
	router := newTestApplication(t, true).Router()

	rec := postJSON(router, "/api/v1/kits/demo/render", `{"template_id":"elegant","data":{"full_name":"Edited Name"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Edited Name") || !strings.Contains(rec.Body.String(), `data-template="elegant"`) {
		t.Fatalf("edits not rendered")
	}

	if rec := get(router, "/kit/demo"); strings.Contains(rec.Body.String(), "Edited Name") {
		t.Fatalf("edits must not change the published kit")
	}
	if rec := postJSON(router, "/api/v1/kits/nobody/render", `{}`); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown creator, got %d", rec.Code)
	}
	if rec := postJSON(router, "/api/v1/kits/demo/render", `{"data":{"full_name":"<b>x</b>"}}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for markup in a plain field, got %d", rec.Code)
	}
}

func TestApplicationRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{EnableDatabase: true, DBDriver: "oracle"}
	if _, err := New(cfg, Options{Templates: web.Templates()}); err == nil {
		t.Fatalf("expected an error for an unsupported driver")
	}
}
