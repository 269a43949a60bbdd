package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookable/internal/auth/token"
	"bookable/pkg/logger"
)

const ClaimsKey contextKey = "auth_claims"

// ClaimsFromContext returns the authenticated claims stored by
// RequireAuth, or nil on unauthenticated routes.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*token.Claims); ok {
		return claims
	}
	return nil
}

// RequireAuth enforces a Bearer token on every route except the listed
// skip paths. When the request addresses a tenant-scoped path, the
// token's tenant must match the tenant in the URL, so a user can never
// act across tenants regardless of what the handler does.
func RequireAuth(secret []byte, log *logger.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			claims, err := token.Parse(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				log.Warn("Token validation failed",
					"request_id", RequestID(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			if tenantID := tenantFromPath(r.URL.Path); tenantID != "" && tenantID != claims.TenantID {
				log.Warn("Tenant mismatch",
					"request_id", RequestID(r.Context()),
					"token_tenant", claims.TenantID,
					"path_tenant", tenantID,
				)
				writeAuthError(w, http.StatusForbidden, "Token does not grant access to this tenant")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tenantFromPath extracts the tenant ID from paths shaped like
// /api/v1/tenants/:tenantId/... and returns "" for everything else.
func tenantFromPath(path string) string {
	const marker = "/tenants/"
	idx := strings.Index(path, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimPrefix(path[idx+len(marker):], "/")
	if rest == "" {
		return ""
	}
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		return rest[:slash]
	}
	return rest
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
