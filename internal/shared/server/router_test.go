package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume-ats/internal/analyses"
	"resume-ats/internal/documents"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/auth"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/server/middleware"
)

func testDeps(cfg config.Config) RouterDeps {
	docs := documents.NewService(documents.ModePlaceholder, 0)
	svc := analyses.NewService(scoring.NewEngine(scoring.WithSeed(1)), docs)
	return RouterDeps{
		Config:          cfg,
		AnalysisHandler: analyses.NewHandler(svc),
		DocumentHandler: documents.NewHandler(docs),
	}
}

func TestHealthIsOpenWhenAuthEnabled(t *testing.T) {
	verifier, err := auth.NewVerifier("secret")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	deps := testDeps(config.Config{Env: "dev"})
	deps.Verifier = verifier
	r := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["ok"] != true {
		t.Fatalf("expected ok=true, got %v", payload)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestAnalyzeRouteWithoutAuth(t *testing.T) {
	r := NewRouter(testDeps(config.Config{Env: "dev"}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"text":"Python developer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestMeReportsAnonymousPrincipal(t *testing.T) {
	r := NewRouter(testDeps(config.Config{Env: "dev"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), middleware.AnonymousUser) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestRateLimitSkipsHealth(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	deps := testDeps(config.Config{Env: "dev", RateLimitRPS: 1, RateLimitBurst: 1})
	deps.RateLimiter = middleware.NewRateLimiter(func() time.Time { return now })
	r := NewRouter(deps)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("health request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/sections", strings.NewReader(`{"text":"SKILLS\nGo"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		codes = append(codes, resp.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
