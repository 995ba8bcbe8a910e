package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hirebox/internal/core"

	"go.uber.org/zap"
)

const principalKey contextKey = "principal"

type errorResponse struct {
	Error string `json:"error"`
}

type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	authorizer Authorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs:       logger,
		authorizer: authorizer,
	}
}

// RequireRole lets the request through only with an "Authorization: Bearer"
// token whose role matches. Missing or invalid tokens get 401, a valid token
// with another role gets 403.
func (m *AuthMiddleware) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		principal, err := m.authorizer.Authorize(bearerToken(r), role)
		if err != nil {
			code := http.StatusUnauthorized
			message := core.ErrInvalidToken.Error()
			if errors.Is(err, core.ErrForbidden) {
				code = http.StatusForbidden
				message = core.ErrInsufficientRole.Error()
			}

			m.logs.Warnw("request not authorized",
				"error", err,
				"path", r.URL.Path,
				"user_id", principal.ID,
				"request_id", requestID)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
				m.logs.Errorw("failed to encode response", "error", err, "request_id", requestID)
			}
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next(w, r.WithContext(ctx))
	}
}

// PrincipalFrom returns the identity stored by RequireRole.
func PrincipalFrom(ctx context.Context) (core.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(core.Principal)
	return principal, ok
}

func bearerToken(r *http.Request) string {
	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}
