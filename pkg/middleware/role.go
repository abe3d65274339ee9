package middleware

import (
	"net/http"

	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
)

// RoleMiddleware restringe a rota aos papéis informados.
// Com a autenticação desabilitada a rota fica aberta.
func RoleMiddleware(authService authenticating.Authenticator, allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			// Obter claims do usuário do contexto
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiResponse.WriteError(w, apiResponse.StatusUnauthorized, "Usuário não autenticado")
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				log.ForContext(r.Context()).Warnf("Acesso negado para usuário %s, papel %s", userClaims.Username, userClaims.Role)
				apiResponse.WriteError(w, apiResponse.StatusForbidden, "Você não tem permissão para acessar este recurso")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return RoleMiddleware(authService, []string{domain.RoleAdmin})
}
