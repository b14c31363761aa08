package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/handlers"
	"pipeline-studio/internal/server"
)

// Handler builds the routed HTTP handler over the application's components
func (app *App) Handler() http.Handler {
	h := handlers.New(app.Pipelines, app.Queries, app.Sessions, app.Catalog, logging.GetGlobalLogger())

	router := mux.NewRouter()
	SetupRoutes(router, h, app.Limiter)
	return router
}

// RunServer creates the HTTP server with all handlers configured
func (app *App) RunServer() *server.Server {
	return server.New(app.Handler(), app.Config.Addr(), app.Logger)
}
