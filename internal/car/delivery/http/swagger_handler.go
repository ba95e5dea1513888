package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/electric-cars/docs"
)

// RegisterSwaggerDocs serves the Swagger UI under /api-docs/
func RegisterSwaggerDocs(router *mux.Router) {
	router.Handle("/api-docs", http.RedirectHandler("/api-docs/", http.StatusMovedPermanently))
	router.PathPrefix("/api-docs/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))
}
