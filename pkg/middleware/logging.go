package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
)

const (
	// CorrelationIDHeader devolve ao cliente o ID de correlação da requisição
	CorrelationIDHeader = "X-Correlation-ID"
	// SyncRunIDHeader é preenchido pelas rotas que executam uma sincronização
	SyncRunIDHeader = "X-Sync-Run-ID"
)

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware gera o correlation id e registra uma linha por requisição,
// incluindo o run_id quando a rota executou uma sincronização.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			w.Header().Set(CorrelationIDHeader, correlationID)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			started := time.Now()

			next.ServeHTTP(recorder, r.WithContext(ctx))

			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": recorder.status,
				"duration_ms": time.Since(started).Milliseconds(),
			}
			if runID := w.Header().Get(SyncRunIDHeader); runID != "" {
				fields["run_id"] = runID
			}
			logger := log.ForContext(ctx).WithFields(fields)

			switch {
			case recorder.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case recorder.status >= http.StatusBadRequest:
				logger.Warn("Requisição rejeitada")
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

// LogPanicMiddleware recupera panics e responde com o envelope de erro
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"error":  fmt.Sprint(rec),
				})

				if log.IsDevelopment() {
					logger.Error("Panic durante a requisição")
					fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
				} else {
					logger.WithField("stack_trace", string(debug.Stack())).Error("Panic durante a requisição")
				}

				// O detalhe do panic nunca é enviado ao cliente
				apiResponse.WriteError(w, apiResponse.StatusInternalServerError, "Erro interno no servidor")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
