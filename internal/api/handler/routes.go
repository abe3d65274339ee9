package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sticky-analytics-api/infrastructure/integrator/sticky"
	"github.com/vfg2006/sticky-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sticky-analytics-api/internal/scheduler"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sticky-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/sticky-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProductPrefixes são os caminhos onde as rotas de produtos são montadas
var ProductPrefixes = []string{"/products", "/api/products"}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Products monta as rotas de produtos em cada prefixo.
// Leitura é aberta; sincronização e cache exigem administrador.
func Products(
	analytics analyzing.AnalyticsReader,
	syncer syncing.ProductSyncer,
	stickyService sticky.StickyIntegrator,
	authenticator authenticating.Authenticator,
) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly(authenticator)}

	routes := make([]router.Route, 0, len(ProductPrefixes)*4)
	for _, prefix := range ProductPrefixes {
		routes = append(routes,
			router.Route{
				Path:    prefix,
				Method:  http.MethodGet,
				Handler: ScanProducts(analytics),
			},
			router.Route{
				Path:    prefix + "/analytics",
				Method:  http.MethodGet,
				Handler: ProductAnalytics(analytics),
			},
			router.Route{
				Path:        prefix + "/sync",
				Method:      http.MethodPost,
				Handler:     SyncProducts(syncer),
				Middlewares: adminOnly,
			},
			router.Route{
				Path:        prefix + "/catalog/cache",
				Method:      http.MethodDelete,
				Handler:     InvalidateCatalogCache(stickyService),
				Middlewares: adminOnly,
			},
		)
	}

	return routes
}

func CronJobs(service scheduler.ProductSyncScheduler, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/products/run",
			Method:      http.MethodPost,
			Handler:     RunProductSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authenticator)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authenticator)},
		},
	}
}
