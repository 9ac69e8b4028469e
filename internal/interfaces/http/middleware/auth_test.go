package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

func newSessionService(t *testing.T, handler http.Handler) *session.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Session: config.SessionConfig{VerifyCache: time.Minute},
	}
	return session.NewService(backend.NewClientWithBaseURL(srv.URL, 5*time.Second), nil, cfg)
}

func verifyBackend(name, role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"name": name, "role": role})
	})
}

func rejectingBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
	})
}

func runRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(OptionalAuth(newSessionService(t, rejectingBackend())))
	router.GET("/probe", func(c *gin.Context) {
		if _, ok := GetSessionFromContext(c); ok {
			t.Error("expected no session for anonymous request")
		}
		c.Status(http.StatusOK)
	})

	if resp := runRequest(router, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected anonymous request to pass, got %d", resp.Code)
	}
}

func TestOptionalAuthInvalidTokenContinuesAnonymously(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(OptionalAuth(newSessionService(t, rejectingBackend())))
	router.GET("/probe", func(c *gin.Context) {
		if _, ok := GetSessionFromContext(c); ok {
			t.Error("expected no session for rejected token")
		}
		c.Status(http.StatusOK)
	})

	if resp := runRequest(router, "Bearer bad-token"); resp.Code != http.StatusOK {
		t.Fatalf("expected request to pass anonymously, got %d", resp.Code)
	}
}

func TestOptionalAuthResolvesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(OptionalAuth(newSessionService(t, verifyBackend("Ada", "admin"))))
	router.GET("/probe", func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok || sess.Name != "Ada" {
			t.Errorf("expected resolved session, got %+v", sess)
		}
		if GetTokenFromContext(c) != "tok" {
			t.Errorf("expected token in context, got %q", GetTokenFromContext(c))
		}
		c.Status(http.StatusOK)
	})

	if resp := runRequest(router, "Bearer tok"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireAuth(newSessionService(t, verifyBackend("Ada", "customer"))))
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	if resp := runRequest(router, ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if resp := runRequest(router, "Basic abc"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", resp.Code)
	}
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireAuth(newSessionService(t, rejectingBackend())))
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	if resp := runRequest(router, "Bearer bad"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := newSessionService(t, verifyBackend("Ada", "customer"))

	router := gin.New()
	router.Use(RequireAuth(svc))
	router.Use(RequireRole(session.RoleAdmin, session.RoleSuperAdmin))
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	if resp := runRequest(router, "Bearer tok"); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.Code)
	}

	adminRouter := gin.New()
	adminRouter.Use(RequireAuth(newSessionService(t, verifyBackend("Root", "super-admin"))))
	adminRouter.Use(RequireRole(session.RoleAdmin, session.RoleSuperAdmin))
	adminRouter.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	if resp := runRequest(adminRouter, "Bearer tok"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for super-admin, got %d", resp.Code)
	}
}
