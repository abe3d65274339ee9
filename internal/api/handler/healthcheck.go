package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
			apiResponse.WriteError(w, apiResponse.StatusServiceUnavailable, "database unreachable")
			return
		}

		apiResponse.WriteSuccess(w, map[string]string{
			"time": time.Now().Format(time.RFC3339),
		})
	})
}
