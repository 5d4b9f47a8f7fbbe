package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"hotel-booking/pkg/utils"
)

// CORS allows only GET and POST from the configured frontend origins.
func CORS(config utils.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
