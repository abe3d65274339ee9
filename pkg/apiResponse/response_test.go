package apiResponse

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected int
	}{
		{StatusOK, http.StatusOK},
		{StatusCreated, http.StatusCreated},
		{StatusBadRequest, http.StatusBadRequest},
		{StatusError, http.StatusBadRequest},
		{StatusUnauthorized, http.StatusUnauthorized},
		{StatusForbidden, http.StatusForbidden},
		{StatusNotFound, http.StatusNotFound},
		{StatusConflict, http.StatusConflict},
		{StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{StatusTooManyRequests, http.StatusTooManyRequests},
		{StatusInternalServerError, http.StatusInternalServerError},
		{StatusUnknownError, http.StatusInternalServerError},
		{StatusNotImplemented, http.StatusNotImplemented},
		{StatusBadGateway, http.StatusBadGateway},
		{StatusServiceUnavailable, http.StatusServiceUnavailable},
		{StatusGatewayTimeout, http.StatusGatewayTimeout},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.status))
		})
	}
}

func TestWrite(t *testing.T) {
	t.Run("Sucesso - envelope com dados", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteSuccess(rec, map[string]int{"total": 2})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":true,"message":"OK","data":{"total":2}}`, rec.Body.String())
	})

	t.Run("Erro - envelope sem dados", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteError(rec, StatusBadGateway, "plataforma indisponível")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"BAD_GATEWAY","longMessage":"plataforma indisponível"}`, rec.Body.String())
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"plataforma remota", &domain.RemoteError{Operation: "product_index", Code: "342"}, StatusBadGateway},
		{"plataforma remota encapsulada", fmt.Errorf("sync: %w", domain.ErrRemoteUnavailable), StatusBadGateway},
		{"banco de dados", &domain.StoreError{Operation: "upsert", Err: errors.New("boom")}, StatusServiceUnavailable},
		{"validação", &domain.ValidationError{Field: "refresh", Message: "valor inválido"}, StatusBadRequest},
		{"genérico", errors.New("boom"), StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFromError(tt.err))
		})
	}
}

func TestFromError(t *testing.T) {
	rec := httptest.NewRecorder()

	FromError(rec, &domain.StoreError{Operation: "get_by_ids", Unreachable: true, Err: errors.New("connection refused")})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"SERVICE_UNAVAILABLE"`)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
