package router

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"github.com/vfg2006/sticky-analytics-api/pkg/log"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

// Route associa um handler a um método e caminho, com middlewares próprios da rota
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o router com respostas no envelope padrão também para
// rotas inexistentes, métodos não suportados e panics nos handlers.
func New(configs ...ConfigRouter) Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(notFound)
	hr.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)
	hr.PanicHandler = recoverPanic

	router := &Router{router: hr}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apiResponse.WriteError(w, apiResponse.StatusNotFound, fmt.Sprintf("Rota %s não encontrada", r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	// httprouter já preenche o cabeçalho Allow com os métodos aceitos
	apiResponse.WriteError(w, apiResponse.StatusBadRequest,
		fmt.Sprintf("Método %s não suportado em %s", r.Method, r.URL.Path))
}

func recoverPanic(w http.ResponseWriter, r *http.Request, rec any) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  fmt.Sprint(rec),
	}).Error("Panic no handler da rota")

	apiResponse.WriteError(w, apiResponse.StatusInternalServerError, "Erro interno no servidor")
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares de cada uma na ordem declarada
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
