package middlewares

import (
	"context"
	"net/http"
	"strings"

	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"
	"codexrfa-service/internal/pkg/utils"
)

// SessionAuth extracts and verifies the session token issued at session
// start, placing the session ID on the request context. The token carries
// only the opaque session ID, never identity or answers.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.AuthBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := strings.TrimPrefix(header, constvars.AuthBearerPrefix)

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.Session.JWTSecret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
