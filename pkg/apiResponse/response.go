package apiResponse

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes de status usados no campo message do envelope
const (
	StatusOK                  = "OK"
	StatusCreated             = "CREATED"
	StatusBadRequest          = "BAD_REQUEST"
	StatusError               = "ERROR"
	StatusUnauthorized        = "UNAUTHORIZED"
	StatusForbidden           = "FORBIDDEN"
	StatusNotFound            = "NOT_FOUND"
	StatusConflict            = "CONFLICT"
	StatusUnprocessableEntity = "UNPROCESSABLE_ENTITY"
	StatusTooManyRequests     = "TOO_MANY_REQUESTS"
	StatusInternalServerError = "INTERNAL_SERVER_ERROR"
	StatusUnknownError        = "UNKNOWN_ERROR"
	StatusNotImplemented      = "NOT_IMPLEMENTED"
	StatusBadGateway          = "BAD_GATEWAY"
	StatusServiceUnavailable  = "SERVICE_UNAVAILABLE"
	StatusGatewayTimeout      = "GATEWAY_TIMEOUT"
)

// Mapeamento dos nomes de status para status HTTP
var httpStatusMap = map[string]int{
	StatusOK:                  http.StatusOK,
	StatusCreated:             http.StatusCreated,
	StatusBadRequest:          http.StatusBadRequest,
	StatusError:               http.StatusBadRequest,
	StatusUnauthorized:        http.StatusUnauthorized,
	StatusForbidden:           http.StatusForbidden,
	StatusNotFound:            http.StatusNotFound,
	StatusConflict:            http.StatusConflict,
	StatusUnprocessableEntity: http.StatusUnprocessableEntity,
	StatusTooManyRequests:     http.StatusTooManyRequests,
	StatusInternalServerError: http.StatusInternalServerError,
	StatusUnknownError:        http.StatusInternalServerError,
	StatusNotImplemented:      http.StatusNotImplemented,
	StatusBadGateway:          http.StatusBadGateway,
	StatusServiceUnavailable:  http.StatusServiceUnavailable,
	StatusGatewayTimeout:      http.StatusGatewayTimeout,
}

// Envelope é o formato único de resposta da API
type Envelope struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	LongMessage string `json:"longMessage,omitempty"`
	Data        any    `json:"data,omitempty"`
}

// HTTPStatus retorna o status HTTP do nome informado (500 para nomes desconhecidos)
func HTTPStatus(status string) int {
	code, exists := httpStatusMap[status]
	if !exists {
		return http.StatusInternalServerError
	}
	return code
}

// IsSuccess indica se o nome de status representa sucesso
func IsSuccess(status string) bool {
	return status == StatusOK || status == StatusCreated
}

// Write escreve o envelope com o status HTTP correspondente ao nome
func Write(w http.ResponseWriter, status string, longMessage string, data any) {
	envelope := Envelope{
		Success:     IsSuccess(status),
		Message:     status,
		LongMessage: longMessage,
		Data:        data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(status))

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logrus.WithError(err).Error("Erro ao escrever resposta")
	}
}

func WriteSuccess(w http.ResponseWriter, data any) {
	Write(w, StatusOK, "", data)
}

func WriteError(w http.ResponseWriter, status string, longMessage string) {
	Write(w, status, longMessage, nil)
}

// StatusFromError traduz os erros de domínio para o nome de status da resposta
func StatusFromError(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return StatusBadGateway
	case errors.Is(err, domain.ErrStoreUnavailable):
		return StatusServiceUnavailable
	case errors.Is(err, domain.ErrValidation):
		return StatusBadRequest
	default:
		return StatusInternalServerError
	}
}

// FromError escreve o erro com o status correspondente; longMessage é apenas o texto do erro
func FromError(w http.ResponseWriter, err error) {
	if err == nil {
		WriteError(w, StatusUnknownError, "Erro desconhecido")
		return
	}

	WriteError(w, StatusFromError(err), err.Error())
}
