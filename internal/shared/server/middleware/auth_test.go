package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/auth"
)

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier, err := auth.NewVerifier("secret")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	router := gin.New()
	router.Use(Auth(verifier))
	router.OPTIONS("/api/v1/analyze", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthWithoutVerifierIsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(nil))
	router.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != AnonymousUser {
		t.Fatalf("expected %q, got %q", AnonymousUser, resp.Body.String())
	}
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier, err := auth.NewVerifier("secret")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	router := gin.New()
	router.Use(Auth(verifier, "/api/v1/health"))
	router.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/private", func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFromContext(c))
	})

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "public path", path: "/api/v1/health", want: http.StatusOK},
		{name: "missing header", path: "/api/v1/private", want: http.StatusUnauthorized},
		{name: "wrong scheme", path: "/api/v1/private", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", path: "/api/v1/private", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestAuthAcceptsSignedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier, err := auth.NewVerifier("secret")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	token, err := verifier.Sign("user-42", time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	router := gin.New()
	router.Use(Auth(verifier))
	router.GET("/api/v1/private", func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "user-42" {
		t.Fatalf("unexpected user id %q", resp.Body.String())
	}
}
