package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
	"github.com/vfg2006/sticky-analytics-api/pkg/middleware"
)

// ScanProducts lista os produtos alvo já sincronizados
func ScanProducts(service analyzing.AnalyticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ScanProducts")

		products, err := service.ScanProducts(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao listar produtos")
			apiResponse.FromError(w, err)
			return
		}

		apiResponse.WriteSuccess(w, products)
	}
}

// ProductAnalytics retorna o resumo financeiro dos produtos alvo
func ProductAnalytics(service analyzing.AnalyticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ProductAnalytics")

		analytics, err := service.Summarize(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao calcular resumo dos produtos")
			apiResponse.FromError(w, err)
			return
		}

		apiResponse.WriteSuccess(w, analytics)
	}
}

// SyncProducts executa a sincronização dos produtos alvo.
// Aceita ?refresh=true para descartar o catálogo em cache antes da execução.
func SyncProducts(service syncing.ProductSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - SyncProducts")

		opts := syncing.SyncOptions{}
		if refresh := r.URL.Query().Get("refresh"); refresh != "" {
			value, err := strconv.ParseBool(refresh)
			if err != nil {
				apiResponse.FromError(w, &domain.ValidationError{
					Field:   "refresh",
					Message: "deve ser true ou false",
				})
				return
			}
			opts.RefreshCatalog = value
		}

		result, err := service.SyncProducts(r.Context(), opts)
		if err != nil {
			var syncErr *syncing.SyncError
			if errors.As(err, &syncErr) && syncErr.RunID != "" {
				w.Header().Set(middleware.SyncRunIDHeader, syncErr.RunID)
			}
			logger.WithError(err).Error("Erro ao sincronizar produtos")
			apiResponse.FromError(w, err)
			return
		}

		w.Header().Set(middleware.SyncRunIDHeader, result.Summary.RunID)
		apiResponse.WriteSuccess(w, result)
	}
}

// InvalidateCatalogCache descarta o catálogo de produtos em cache
func InvalidateCatalogCache(service sticky.StickyIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - InvalidateCatalogCache")

		service.InvalidateProductCatalog()

		apiResponse.Write(w, apiResponse.StatusOK, "Cache do catálogo invalidado", nil)
	}
}
