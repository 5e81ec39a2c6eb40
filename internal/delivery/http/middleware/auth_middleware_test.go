package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-food-service/config"
	"hospital-food-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore is an in-memory stand-in for the Redis store
type fakeSessionStore struct {
	sessions map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]bool)}
}

func (s *fakeSessionStore) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (s *fakeSessionStore) Put(_ context.Context, userID uuid.UUID, tokenID string, _ time.Duration) error {
	s.sessions[s.key(userID, tokenID)] = true
	return nil
}

func (s *fakeSessionStore) Exists(_ context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.sessions[s.key(userID, tokenID)], nil
}

func (s *fakeSessionStore) Revoke(_ context.Context, userID uuid.UUID, tokenID string) error {
	delete(s.sessions, s.key(userID, tokenID))
	return nil
}

func (s *fakeSessionStore) RevokeAll(_ context.Context, userID uuid.UUID) error {
	for k := range s.sessions {
		delete(s.sessions, k)
	}
	return nil
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
	})
}

func okHandler(captured *http.Request) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = *r
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), newFakeSessionStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateValidCookie(t *testing.T) {
	jwtService := newTestJWTService()
	sessions := newFakeSessionStore()
	m := NewAuthMiddleware(jwtService, sessions)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateToken(userID, "admin@hospital.test", "admin")
	require.NoError(t, err)
	require.NoError(t, sessions.Put(context.Background(), userID, tokenID, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()

	var captured http.Request
	m.Authenticate(okHandler(&captured)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserIDFromContext(captured.Context())
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	role, ok := GetRoleFromContext(captured.Context())
	require.True(t, ok)
	assert.Equal(t, "admin", role)

	gotTokenID, ok := GetTokenIDFromContext(captured.Context())
	require.True(t, ok)
	assert.Equal(t, tokenID, gotTokenID)
}

func TestAuthenticateBearerFallback(t *testing.T) {
	jwtService := newTestJWTService()
	sessions := newFakeSessionStore()
	m := NewAuthMiddleware(jwtService, sessions)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateToken(userID, "pantry@hospital.test", "pantry")
	require.NoError(t, err)
	require.NoError(t, sessions.Put(context.Background(), userID, tokenID, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateRevokedSession(t *testing.T) {
	jwtService := newTestJWTService()
	sessions := newFakeSessionStore()
	m := NewAuthMiddleware(jwtService, sessions)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateToken(userID, "admin@hospital.test", "admin")
	require.NoError(t, err)
	require.NoError(t, sessions.Put(context.Background(), userID, tokenID, time.Hour))
	require.NoError(t, sessions.Revoke(context.Background(), userID, tokenID))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateTamperedToken(t *testing.T) {
	jwtService := newTestJWTService()
	sessions := newFakeSessionStore()
	m := NewAuthMiddleware(jwtService, sessions)

	other := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", TokenExpiry: time.Hour})
	token, _, err := other.GenerateToken(uuid.New(), "admin@hospital.test", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
