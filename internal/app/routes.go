package app

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"pipeline-studio/internal/handlers"
	"pipeline-studio/internal/middleware"
	"pipeline-studio/internal/ratelimit"
)

// SetupRoutes configures all HTTP routes for the application.
// A nil limiter leaves the API unthrottled.
func SetupRoutes(router *mux.Router, h *handlers.Handlers, limiter *ratelimit.Limiter) {
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	// Health check
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)
	if limiter != nil {
		api.Use(limiter.HTTPMiddleware(ratelimit.IPBasedKey))
	}

	// Catalog endpoints
	api.HandleFunc("/catalog/sources", h.GetSources).Methods("GET")
	api.HandleFunc("/catalog/outputs", h.GetOutputs).Methods("GET")

	// Pipeline store endpoints
	api.HandleFunc("/pipelines", h.GetPipelines).Methods("GET")
	api.HandleFunc("/pipelines", h.CreatePipeline).Methods("POST")
	api.HandleFunc("/pipelines/{id}", h.GetPipeline).Methods("GET")
	api.HandleFunc("/pipelines/{id}", h.UpdatePipeline).Methods("PUT")
	api.HandleFunc("/pipelines/{id}", h.DeletePipeline).Methods("DELETE")
	api.HandleFunc("/pipelines/{id}/toggle", h.TogglePipeline).Methods("POST")

	// Builder wizard endpoints
	api.HandleFunc("/builder", h.OpenBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}", h.GetBuilder).Methods("GET")
	api.HandleFunc("/builder/{sid}", h.PatchBuilder).Methods("PATCH")
	api.HandleFunc("/builder/{sid}/advance", h.AdvanceBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/retreat", h.RetreatBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/cancel", h.CancelBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/save", h.SaveBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/sources/other", h.AddBuilderOtherSource).Methods("POST")
	api.HandleFunc("/builder/{sid}/sources/{id}/toggle", h.ToggleBuilderSource).Methods("POST")
	api.HandleFunc("/builder/{sid}/analyses/{kind}", h.AddBuilderAnalysis).Methods("POST")
	api.HandleFunc("/builder/{sid}/analyses/{index}", h.RemoveBuilderAnalysis).Methods("DELETE")

	// Saved query endpoints
	api.HandleFunc("/queries", h.GetQueries).Methods("GET")
	api.HandleFunc("/queries", h.SaveQuery).Methods("POST")
	api.HandleFunc("/queries/{id}", h.DeleteQuery).Methods("DELETE")
}
