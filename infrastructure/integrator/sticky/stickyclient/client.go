package stickyclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	stickydomain "github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky/domain"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	GetProductIndex(ctx context.Context, productIDs []string) (*stickydomain.ProductIndexResponse, error)
	FindOrders(ctx context.Context, params stickydomain.OrderFindRequest) (*stickydomain.OrderFindResponse, error)
	ViewOrders(ctx context.Context, orderIDs []int) (*stickydomain.OrderViewResponse, error)
}

type StickyClient struct {
	httpClient *http.Client
	config     config.Sticky
}

// NewClient cria uma nova instância do cliente da API de pedidos
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Sticky.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &StickyClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg.Sticky,
	}
}

// post envia o corpo em JSON para o endpoint e decodifica a resposta em out.
// Respostas com response_code diferente de 100 retornam *domain.RemoteError.
func (c *StickyClient) post(ctx context.Context, operation string, body any, out responseWithCode) error {
	ctx, cancel := context.WithTimeout(ctx, c.httpClient.Timeout)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return remoteError(operation, errors.Wrap(err, "erro ao analisar a URL base"))
	}
	endpoint.Path = path.Join(endpoint.Path, operation)

	payload, err := json.Marshal(body)
	if err != nil {
		return remoteError(operation, errors.Wrap(err, "erro ao serializar a requisição"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return remoteError(operation, errors.Wrap(err, "erro ao criar a requisição"))
	}

	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return remoteError(operation, errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &domain.RemoteError{
			Operation: operation,
			Message:   fmt.Sprintf("requisição falhou com status: %s %s", resp.Status, bytes.TrimSpace(respBody)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return remoteError(operation, errors.Wrap(err, "erro ao decodificar a resposta"))
	}

	if base := out.Base(); !base.IsSuccess() {
		return &domain.RemoteError{
			Operation: operation,
			Code:      string(base.ResponseCode),
			Message:   messageOrDefault(base.Message),
		}
	}

	return nil
}

type responseWithCode interface {
	Base() stickydomain.BaseResponse
}

func remoteError(operation string, err error) *domain.RemoteError {
	return &domain.RemoteError{
		Operation: operation,
		Err:       err,
	}
}

func messageOrDefault(message string) string {
	if message == "" {
		return "Unknown error"
	}
	return message
}
