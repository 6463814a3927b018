package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-calc-api/internal/token"
)

func newGate(t *testing.T, secret string, ttl time.Duration) (*AuthMiddleware, *token.Issuer) {
	t.Helper()

	issuer, err := token.NewIssuer(secret, ttl)
	require.NoError(t, err)

	return NewAuthMiddleware(issuer), issuer
}

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", claims.Email)
		w.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var parsed struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return parsed.Error.Code
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	gate, _ := newGate(t, "test-secret", time.Hour)
	handler := gate.RequireAuth(protectedHandler(t))

	for _, header := range []string{"", "Token abc", "bearer", "Basic dXNlcg=="} {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Equal(t, "MISSING_CREDENTIAL", errorCode(t, rec), "header %q", header)
	}
}

func TestRequireAuth_RejectedToken(t *testing.T) {
	gate, _ := newGate(t, "test-secret", time.Hour)
	handler := gate.RequireAuth(protectedHandler(t))

	other, err := token.NewIssuer("other-secret", time.Hour)
	require.NoError(t, err)
	forged, err := other.Issue("u1", "alice@example.com")
	require.NoError(t, err)

	for _, presented := range []string{"garbage", forged} {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
		req.Header.Set("Authorization", "Bearer "+presented)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REJECTED_CREDENTIAL", errorCode(t, rec))
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	gate, issuer := newGate(t, "test-secret", time.Nanosecond)
	handler := gate.RequireAuth(protectedHandler(t))

	signed, err := issuer.Issue("u1", "alice@example.com")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REJECTED_CREDENTIAL", errorCode(t, rec))
}

func TestRequireAuth_ValidToken(t *testing.T) {
	gate, issuer := newGate(t, "test-secret", time.Hour)
	handler := gate.RequireAuth(protectedHandler(t))

	signed, err := issuer.Issue("u1", "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", rec.Header().Get("X-User"))
}
