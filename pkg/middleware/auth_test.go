package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookable/internal/auth/token"
	"bookable/pkg/logger"
	"bookable/pkg/model"
)

var authSecret = []byte("test-secret")

func signedToken(t *testing.T, tenantID string) string {
	t.Helper()
	signed, err := token.Generate(model.User{
		ID:       "user-1",
		TenantID: tenantID,
		Email:    "employee@innovatecorp.com",
		Name:     "John Doe",
	}, authSecret, time.Hour)
	require.NoError(t, err)
	return signed
}

func protected(t *testing.T, onRequest func(r *http.Request)) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if onRequest != nil {
			onRequest(r)
		}
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(authSecret, logger.Discard(), "/api/v1/auth/login")(next)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/tenant-1/bookings", nil)
	w := httptest.NewRecorder()

	protected(t, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/tenant-1/bookings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()

	protected(t, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsMatchingTenant(t *testing.T) {
	var claims *token.Claims
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/tenant-1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "tenant-1"))
	w := httptest.NewRecorder()

	protected(t, func(r *http.Request) {
		claims = ClaimsFromContext(r.Context())
	}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
}

func TestRequireAuthRejectsCrossTenantAccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/tenant-2/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "tenant-1"))
	w := httptest.NewRecorder()

	protected(t, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthSkipsLoginPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	w := httptest.NewRecorder()

	protected(t, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTenantFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/tenants/tenant-1/bookings", "tenant-1"},
		{"/api/v1/tenants/tenant-1/resources", "tenant-1"},
		{"/api/v1/tenants/tenant-1", "tenant-1"},
		{"/api/v1/tenants", ""},
		{"/api/v1/tenants/", ""},
		{"/api/v1/auth/login", ""},
		{"/health", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tenantFromPath(tt.path), "path %s", tt.path)
	}
}
