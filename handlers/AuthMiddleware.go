package handlers

import (
	"context"
	"net/http"
	"strings"

	"DashboardWebService/auth"

	"github.com/sirupsen/logrus"
)

type claimsKey struct{}

// ClaimsFromContext retrieves the authenticated claims attached by the
// authentication gate, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// Authenticate is the authentication gate. It extracts the bearer credential
// from the Authorization header, verifies it, and attaches the resolved
// claims to the request context before invoking next.
//
// A missing credential answers 401 with no body. A token that fails
// verification answers 403 with no body — the same status a role mismatch
// produces, so a caller cannot tell a bad token from an insufficient role.
func (h *Handler) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		tokenString, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			log.WithFields(logrus.Fields{
				"operation": "authenticating user",
				"path":      req.URL.Path,
			}).Error("missing authorization header")
			res.WriteHeader(http.StatusUnauthorized)
			return
		}

		claims, err := auth.VerifyToken(h.secret, tokenString)
		if err != nil {
			log.WithFields(logrus.Fields{
				"operation": "authenticating user",
				"path":      req.URL.Path,
			}).Error("invalid token")
			res.WriteHeader(http.StatusForbidden)
			return
		}

		next(res, req.WithContext(context.WithValue(req.Context(), claimsKey{}, claims)))
	}
}

// RequireRole is the authorization gate. The allow-set is fixed at route
// registration time; a request whose authenticated role is not a member is
// rejected with 403 and no body. It must run after Authenticate.
func (h *Handler) RequireRole(next http.HandlerFunc, roles ...string) http.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(res http.ResponseWriter, req *http.Request) {
		claims, ok := ClaimsFromContext(req.Context())
		if !ok {
			res.WriteHeader(http.StatusForbidden)
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			log.WithFields(logrus.Fields{
				"operation": "authorizing user",
				"path":      req.URL.Path,
				"role":      claims.Role,
			}).Error("role not permitted")
			res.WriteHeader(http.StatusForbidden)
			return
		}
		next(res, req)
	}
}
