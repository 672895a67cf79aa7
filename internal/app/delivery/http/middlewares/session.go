package middlewares

import (
	"healthapp-admin/internal/pkg/exceptions"
	"healthapp-admin/internal/pkg/utils"
	"net/http"
)

// RequireSession guards console routes behind the stored administrator
// session, the server-side equivalent of the login redirect.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Session.Token(r.Context()) == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUpstreamUnauthorized())
			return
		}
		next.ServeHTTP(w, r)
	})
}
