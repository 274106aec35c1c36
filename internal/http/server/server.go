// Package server wires the exercise handlers into a router and an
// *http.Server configured from the application config.
package server

import (
	"net/http"

	"github.com/aanand-mishra/exercises-api/internal/config"
	"github.com/aanand-mishra/exercises-api/internal/http/handlers/exercise"
	"github.com/aanand-mishra/exercises-api/internal/title"
)

// NewRouter registers every route.
//
// Route table:
//
//	POST /api/titles        → normalise a title
//	POST /api/report-cards  → generate a report card
//	POST /api/pnr           → build a PNR status report
//	GET  /healthz           → liveness probe
func NewRouter(cfg *config.Config) *http.ServeMux {
	normalizer := title.New(cfg.Title.MinorWords...)

	router := http.NewServeMux()

	router.HandleFunc("POST /api/titles", exercise.Title(normalizer))
	router.HandleFunc("POST /api/report-cards", exercise.ReportCard())
	router.HandleFunc("POST /api/pnr", exercise.PNR())
	router.HandleFunc("GET /healthz", exercise.Health())

	return router
}

// New returns an *http.Server for cfg. It is configured but not started.
func New(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: NewRouter(cfg),

		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
