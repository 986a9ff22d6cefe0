package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/auth"
)

type mockParser struct {
	session *auth.Session
	err     error
}

func (m *mockParser) Parse(_ string) (*auth.Session, error) {
	return m.session, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func protectedEndpoint(t *testing.T, parser SessionParser) (http.Handler, *bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSession(r.Context())
		require.True(t, ok)
		assert.Equal(t, "operator-1", session.Subject)
		reached = true
	})

	return Auth(parser, nopLogger{})(next), &reached
}

func TestAuth_ValidToken(t *testing.T) {
	handler, reached := protectedEndpoint(t, &mockParser{session: &auth.Session{Subject: "operator-1"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, reached := protectedEndpoint(t, &mockParser{session: &auth.Session{Subject: "operator-1"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NotBearerScheme(t *testing.T) {
	handler, reached := protectedEndpoint(t, &mockParser{session: &auth.Session{Subject: "operator-1"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredSession(t *testing.T) {
	handler, reached := protectedEndpoint(t, &mockParser{err: auth.ErrSessionExpired})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidSession(t *testing.T) {
	handler, reached := protectedEndpoint(t, &mockParser{err: auth.ErrInvalidSession})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer junk")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
