package handler

import (
	"net/http"

	"github.com/vfg2006/sticky-analytics-api/internal/scheduler"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
)

// RunProductSync dispara manualmente a sincronização agendada de produtos
func RunProductSync(service scheduler.ProductSyncScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunProductSync")

		if !service.TriggerManualSync() {
			apiResponse.WriteError(w, apiResponse.StatusConflict, "Sincronização de produtos já está em execução")
			return
		}

		apiResponse.Write(w, apiResponse.StatusOK, "Cron job iniciada com sucesso", map[string]any{
			"type": "products",
		})
	}
}

// GetCronStatus retorna o status da cron de produtos
func GetCronStatus(service scheduler.ProductSyncScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		apiResponse.WriteSuccess(w, map[string]any{
			"products": service.GetStatus(),
		})
	}
}
