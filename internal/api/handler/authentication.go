package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiResponse.WriteError(w, apiResponse.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		response, err := service.Login(req.Username, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Falha no login")
			handleLoginError(w, err)
			return
		}

		apiResponse.WriteSuccess(w, response)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiResponse.WriteError(w, authErr.Code, authErr.Error())
		return
	}

	apiResponse.WriteError(w, apiResponse.StatusInternalServerError, "Erro interno ao realizar login")
}
