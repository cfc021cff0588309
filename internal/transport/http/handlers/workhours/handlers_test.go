package workhourshandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestHandleCalculate(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/workhours?start=01-01-2024&end=07-01-2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload["total"] != float64(32) {
		t.Fatalf("total = %v, want 32", payload["total"])
	}
	year, ok := payload["2024"].(map[string]any)
	if !ok {
		t.Fatalf("missing year node: %s", rec.Body.String())
	}
	if year["total"] != float64(32) {
		t.Fatalf("year total = %v, want 32", year["total"])
	}

	// Ordering is part of the contract: keys ascend, total comes last.
	body := rec.Body.String()
	if !strings.HasSuffix(strings.TrimSpace(body), `"total":32}`) {
		t.Fatalf("total not last: %s", body)
	}
}

func TestHandleCalculateRejectsBadInput(t *testing.T) {
	router := newRouter(t)

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"malformed start", "start=2024-01-01&end=07-01-2024", "invalid start date"},
		{"malformed end", "start=01-01-2024&end=bogus", "invalid end date"},
		{"missing params", "", "invalid start date"},
		{"inverted range", "start=31-12-2024&end=01-01-2024", "start date must be on or before end date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/workhours?"+tc.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var payload map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if !strings.Contains(payload["error"], tc.want) {
				t.Fatalf("error = %q, want mention of %q", payload["error"], tc.want)
			}
		})
	}
}

func TestHandleReportPDF(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/workhours/report.pdf?start=01-01-2024&end=31-01-2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q, want application/pdf", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("body is not a pdf")
	}
}

func TestHandleReportPDFRejectsBadInput(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/workhours/report.pdf?start=bad&end=31-01-2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
