package domain

import (
	"errors"
	"fmt"
)

// Tipos de erro expostos pelo núcleo de sincronização
var (
	ErrRemoteUnavailable = errors.New("remote platform unavailable")
	ErrStoreUnavailable  = errors.New("product store unavailable")
	ErrValidation        = errors.New("validation error")
	ErrInternal          = errors.New("internal error")
)

// RemoteError carrega o código e a mensagem devolvidos pela plataforma
type RemoteError struct {
	Operation string // Endpoint chamado (ex: product_index)
	Code      string // response_code da plataforma, vazio em falhas de transporte
	Message   string
	Err       error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrRemoteUnavailable.Error(), e.Operation)
	if e.Code != "" {
		msg = fmt.Sprintf("%s: API Error: %s - %s", msg, e.Code, e.Message)
	} else if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// StoreError envolve falhas do repositório de produtos
type StoreError struct {
	Operation   string
	Unreachable bool // Conexão perdida ou banco inacessível
	Err         error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable.Error(), e.Operation, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// IsStoreUnreachable indica se o erro representa o banco inacessível
func IsStoreUnreachable(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Unreachable
}

// ValidationError representa uma entrada inválida em um endpoint
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
