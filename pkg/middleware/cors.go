package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// Cors libera o front-end configurado (FRONTEND_URL, aceita lista separada por vírgula)
func Cors(frontendURL string) func(http.Handler) http.Handler {
	origins := make([]string, 0)
	for _, origin := range strings.Split(frontendURL, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{CorrelationIDHeader},
		AllowCredentials: true,
		MaxAge:           86400, // Cache do CORS por 24 horas
	})

	return c.Handler
}
