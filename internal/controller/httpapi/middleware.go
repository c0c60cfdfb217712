package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// requireAdmin пропускает только запросы с "Authorization: Bearer <ADMIN_API_TOKEN>".
// Пустой токен в конфиге закрывает админку целиком
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || s.opts.AdminToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(s.opts.AdminToken)) != 1 {
			s.logger.Warn("Unauthorized admin request",
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
			)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
