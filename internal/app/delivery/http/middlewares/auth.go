package middlewares

import (
	"context"
	"fmt"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/exceptions"
	"medplan-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Authenticate validates the bearer token and stores the staff identity
// in the request context for downstream handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, token.Header["alg"])
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		staffID, _ := claims["staff_id"].(string)
		role, _ := claims["role"].(string)
		if staffID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_STAFF_ID_KEY, staffID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STAFF_ROLE_KEY, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards endpoints reserved for specific staff roles, e.g.
// roster management by administrators.
func (m *Middlewares) RequireRole(roles ...models.StaffRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(constvars.CONTEXT_STAFF_ROLE_KEY).(string)
			for _, allowed := range roles {
				if role == string(allowed) {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
		})
	}
}
