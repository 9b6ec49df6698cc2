// Package server hosts the interactive claim-validation surface: a small
// form page plus a JSON API, optionally behind a shared-secret gate.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rxglitch/claimcheck/internal/refdata"
	"github.com/rxglitch/claimcheck/internal/rules"
)

// Server wires the echo instance, the rule evaluator, and the reference
// catalog. All state is read-only after New; requests share nothing mutable.
type Server struct {
	echo    *echo.Echo
	log     zerolog.Logger
	catalog *refdata.Catalog
	eval    *rules.Evaluator
	secret  string
}

// New builds the server and its routes. An empty secret disables the gate;
// that is logged loudly since it means the surface is open.
func New(log zerolog.Logger, catalog *refdata.Catalog, secret string) *Server {
	s := &Server{
		echo:    echo.New(),
		log:     log,
		catalog: catalog,
		eval:    rules.NewEvaluator(catalog, nil),
		secret:  secret,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Renderer = newRenderer()

	s.echo.Use(Recovery(log))
	s.echo.Use(Logger(log))

	s.echo.GET("/healthz", s.handleHealth)

	gated := s.echo.Group("", Gate(log, secret))
	gated.GET("/", s.handleIndex)
	gated.POST("/", s.handleIndex)
	gated.GET("/api/samples", s.handleSamples)
	gated.POST("/api/validate", s.handleValidate)

	if secret == "" {
		log.Warn().Msg("no shared secret configured; access gate disabled")
	}

	return s
}

// Start begins serving on addr and blocks until Shutdown or failure.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("server listening")
	err := s.echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
