package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/rev-tools/salespulse/pkg/handlers/dashboard"
	salespulsemiddleware "github.com/rev-tools/salespulse/pkg/server/middleware"
	"github.com/rev-tools/salespulse/pkg/services/analytics"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Dashboard handlers.StateController
	Analytics analytics.Client
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the dashboard pages, htmx partials, JSON API and
// static assets onto one chi router.
func ConfigureRouter(config Config) *chi.Mux {
	h := handlers.NewHandler(config.Dependencies.Dashboard, config.Dependencies.Analytics)

	router := chi.NewRouter()

	router.Use(salespulsemiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	// All four client routes render the same dashboard in this version;
	// only the nav highlight differs.
	router.Get("/", h.Page)
	router.Get("/regional", h.Page)
	router.Get("/customers", h.Page)
	router.Get("/reports", h.Page)

	router.Get("/partials/dashboard", h.ContentPartial)
	router.Get("/partials/countries", h.CountriesPartial)
	router.Post("/actions/generate-data", h.GenerateData)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/snapshot", h.APISnapshot)
		r.Get("/risk-histogram", h.APIRiskHistogram)
		r.Post("/generate-data", h.APIGenerateData)
	})

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
