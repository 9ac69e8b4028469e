// internal/domain/session/service.go
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

// ErrTokenExpired reports a bearer token whose expiry has already passed.
// Detected locally so an obviously dead token costs no network round trip.
var ErrTokenExpired = fmt.Errorf("session token expired")

// Service verifies backend-issued bearer tokens. Token issuance and
// signature validation belong to the backend; this service only asks it
// who the token belongs to, with a short-lived cache in front.
type Service struct {
	client      *backend.Client
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewService creates a new session service. redisClient may be nil, in
// which case every verification hits the backend.
func NewService(client *backend.Client, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		client:      client,
		redisClient: redisClient,
		cacheTTL:    cfg.Session.VerifyCache,
	}
}

// Verify resolves a bearer token to a session via GET /api/auth/verify
func (s *Service) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}

	// Reject tokens that are already expired without calling the backend.
	// The claim is read unverified; the backend still owns the signature.
	if expired, err := tokenExpired(token); err == nil && expired {
		return nil, ErrTokenExpired
	}

	if cached := s.fromCache(ctx, token); cached != nil {
		return cached, nil
	}

	var sess Session
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/verify",
		Token:  token,
	}, &sess)
	if err != nil {
		return nil, err
	}

	if sess.Role == "" {
		sess.Role = RoleCustomer
	}

	s.toCache(ctx, token, &sess)
	return &sess, nil
}

// ListUsers retrieves all users (super-admin only)
func (s *Service) ListUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/users",
		Token:  token,
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUserRole changes a user's role (super-admin only)
func (s *Service) UpdateUserRole(ctx context.Context, token, userID string, role Role) error {
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodPut,
		Path:   "/api/auth/users/" + userID + "/role",
		Body:   map[string]Role{"role": role},
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return nil
}

// DeleteUser removes a user (super-admin only)
func (s *Service) DeleteUser(ctx context.Context, token, userID string) error {
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodDelete,
		Path:   "/api/auth/users/" + userID,
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// tokenExpired reads the unverified exp claim. Returns an error for tokens
// that are not JWTs at all; the backend decides what those mean.
func tokenExpired(token string) (bool, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}

	return exp.Before(time.Now()), nil
}

func verifyCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:verify:" + hex.EncodeToString(sum[:])
}

func (s *Service) fromCache(ctx context.Context, token string) *Session {
	if s.redisClient == nil {
		return nil
	}

	data, err := s.redisClient.Get(ctx, verifyCacheKey(token)).Result()
	if err != nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil
	}
	return &sess
}

func (s *Service) toCache(ctx context.Context, token string, sess *Session) {
	if s.redisClient == nil {
		return
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return
	}

	// Best effort; a cache miss just means another verify call
	s.redisClient.Set(ctx, verifyCacheKey(token), data, s.cacheTTL)
}
