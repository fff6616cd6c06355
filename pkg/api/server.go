// Package api provides the HTTP surface over the constitutional
// pipeline: process/stream turns, event log export/import/verify, the
// I15 exit flow contract, and a health endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/axiom-guard/boundary/pkg/alerting"
	"github.com/axiom-guard/boundary/pkg/config"
	"github.com/axiom-guard/boundary/pkg/database"
	"github.com/axiom-guard/boundary/pkg/eventlog"
	"github.com/axiom-guard/boundary/pkg/events"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/pipeline"
	"github.com/axiom-guard/boundary/pkg/replay"
	"github.com/axiom-guard/boundary/pkg/session"
	"github.com/axiom-guard/boundary/pkg/version"
)

// Server is the HTTP API server fronting one boundaryd process.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg         *config.Config
	dbClient    *database.Client
	store       *eventlog.Store
	orchestrator *pipeline.Orchestrator
	sessions    *session.Manager

	replayEngine *replay.Engine // nil until set
	timeTravel   *replay.TimeTravel

	connManager    *events.ConnectionManager // nil if realtime disabled
	eventPublisher *events.Publisher         // nil until set
	alertService   *alerting.Service         // nil if unconfigured

	defaultPrefs expression.Preferences
}

// NewServer constructs the server and registers every route. Dependencies
// that are genuinely optional (realtime, alerting) are wired afterward
// via Set* methods, mirroring the teacher's post-construction wiring
// style; ValidateWiring reports anything still missing before Start.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	store *eventlog.Store,
	orchestrator *pipeline.Orchestrator,
	sessions *session.Manager,
) *Server {
	e := echo.New()

	s := &Server{
		echo:         e,
		cfg:          cfg,
		dbClient:     dbClient,
		store:        store,
		orchestrator: orchestrator,
		sessions:     sessions,
		defaultPrefs: expression.DefaultPreferences(),
	}

	s.setupRoutes()
	return s
}

// SetReplay stores the replay engine and time-travel helper on the
// server. No HTTP route exposes graph derivation, and the process/stream
// handlers do not use either of them.
func (s *Server) SetReplay(engine *replay.Engine, tt *replay.TimeTravel) {
	s.replayEngine = engine
	s.timeTravel = tt
}

// SetConnManager wires the realtime WebSocket connection manager.
func (s *Server) SetConnManager(cm *events.ConnectionManager) {
	s.connManager = cm
}

// SetEventPublisher wires the NOTIFY-backed realtime publisher.
func (s *Server) SetEventPublisher(pub *events.Publisher) {
	s.eventPublisher = pub
}

// SetAlertService wires the on-call crisis alerting service. Nil-safe:
// alerting.Service is itself a no-op on a nil receiver, so this may be
// called with nil when alerting is unconfigured.
func (s *Server) SetAlertService(svc *alerting.Service) {
	s.alertService = svc
}

// ValidateWiring checks the dependencies every request path actually
// needs. connManager/eventPublisher/alertService stay optional — an
// instance with no Slack token or no realtime listeners configured is
// still conforming.
func (s *Server) ValidateWiring() error {
	var errs []error
	if s.store == nil {
		errs = append(errs, fmt.Errorf("eventlog store not set"))
	}
	if s.orchestrator == nil {
		errs = append(errs, fmt.Errorf("pipeline orchestrator not set"))
	}
	if s.sessions == nil {
		errs = append(errs, fmt.Errorf("session manager not set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("server wiring incomplete: %w", errors.Join(errs...))
	}
	return nil
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	s.echo.Use(middleware.BodyLimit(2 * 1024 * 1024))
	s.echo.Use(securityHeaders())

	s.echo.GET("/healthz", s.healthHandler)

	v1 := s.echo.Group("/v1")
	v1.POST("/process", s.processHandler)
	v1.POST("/stream", s.streamHandler)
	v1.GET("/export/:user_id", s.exportHandler)
	v1.POST("/import", s.importHandler)
	v1.GET("/verify/:user_id", s.verifyHandler)
	v1.POST("/exit", s.exitHandler)
	v1.POST("/candidates", s.candidatesHandler)
	v1.GET("/ws", s.wsHandler)
}

// Start starts the HTTP server on addr (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.echo}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
// Used by test infrastructure to serve on a random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /healthz.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Version:  version.Full(),
			Database: dbHealth,
		})
	}

	activeConns := 0
	if s.connManager != nil {
		activeConns = s.connManager.ActiveConnections()
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:            "healthy",
		Version:           version.Full(),
		Database:          dbHealth,
		ActiveConnections: activeConns,
		Sessions:          s.sessions.Len(),
	})
}
