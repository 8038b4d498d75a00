package rest

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// requireAdmin guards a handler behind an HS256 bearer token carrying an
// admin claim. An empty secret disables the endpoint entirely.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(s.jwtSecret) == 0 {
			writeError(w, r, apperrors.New(apperrors.CodeAdminRequired, "admin endpoint is disabled"))
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, r, apperrors.New(apperrors.CodeAdminRequired, "admin token required"))
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !parsed.Valid {
			writeError(w, r, apperrors.New(apperrors.CodeAdminRequired, "admin token invalid"))
			return
		}
		if admin, ok := claims["admin"].(bool); !ok || !admin {
			writeError(w, r, apperrors.New(apperrors.CodeAdminRequired, "admin claim required"))
			return
		}

		next(w, r)
	}
}
