// Command boundaryd runs the constitutional boundary layer: the HTTP API
// in front of the pipeline, the append-only event log, and the realtime
// and retention services built on top of it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"net"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/axiom-guard/boundary/pkg/alerting"
	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/api"
	"github.com/axiom-guard/boundary/pkg/cleanup"
	"github.com/axiom-guard/boundary/pkg/config"
	"github.com/axiom-guard/boundary/pkg/database"
	"github.com/axiom-guard/boundary/pkg/eventlog"
	"github.com/axiom-guard/boundary/pkg/events"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/pipeline"
	"github.com/axiom-guard/boundary/pkg/provider"
	"github.com/axiom-guard/boundary/pkg/replay"
	"github.com/axiom-guard/boundary/pkg/safety"
	"github.com/axiom-guard/boundary/pkg/semantic"
	"github.com/axiom-guard/boundary/pkg/session"
	"github.com/axiom-guard/boundary/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: could not load %s: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	log.Printf("Starting boundaryd %s", version.Full())
	log.Printf("HTTP Port: %s", httpPort)
	log.Printf("Config Directory: %s", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("connected to PostgreSQL, migrations applied")

	store := eventlog.New(dbClient)

	registry, err := axiom.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load invariant registry: %v", err)
	}
	scanner := safety.NewScanner(cfg.ResourcesFor(getEnv("DEFAULT_JURISDICTION", "")))
	analyzer := semantic.NewAnalyzer()
	shaper := expression.NewShaper()

	generator := buildGenerator(cfg.Providers)

	orchestrator := pipeline.NewOrchestrator(registry, scanner, analyzer, shaper, generator, store, getEnv("CONSTITUTION_VERSION", "v1"))

	sessions := session.NewManager()

	srv := api.NewServer(cfg, dbClient, store, orchestrator, sessions)

	replayEngine := replay.NewEngine()
	timeTravel := replay.NewTimeTravel(replayEngine)
	srv.SetReplay(replayEngine, timeTravel)

	if alertSvc := buildAlertService(); alertSvc != nil {
		srv.SetAlertService(alertSvc)
		log.Println("Slack crisis alerting enabled")
	}

	connString := realtimeConnString(dbConfig)
	connManager, stopListener := startRealtime(ctx, connString, dbClient)
	if connManager != nil {
		srv.SetConnManager(connManager)
		srv.SetEventPublisher(events.NewPublisher(dbClient.DB()))
		log.Println("realtime LISTEN/NOTIFY fan-out enabled")
	}

	cleanupSvc := cleanup.NewService(cfg.Retention)
	cleanupSvc.Start(ctx)
	defer cleanupSvc.Stop()

	if err := srv.ValidateWiring(); err != nil {
		log.Fatalf("Server wiring incomplete: %v", err)
	}

	grpcHealthServer, healthSvc := startGRPCHealth(getEnv("GRPC_HEALTH_PORT", "9090"))
	defer grpcHealthServer.Stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on :%s", httpPort)
		errCh <- srv.Start(":" + httpPort)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down gracefully", sig)
		healthSvc.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		if stopListener != nil {
			stopListener()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}

	log.Println("boundaryd stopped")
}

// buildGenerator wires cfg.Providers.Endpoints into a provider.Pool exactly
// like the pack's pkg/provider is built to host: each endpoint names a
// pool member by ID only, the actual Provider (API keys, HTTP transport)
// constructed here at startup rather than inside pkg/config. No concrete
// LLM backend adapter ships in this tree — backends are an external
// collaborator per the constitutional boundary's own scope, so every
// endpoint here resolves to echoProvider, an operator-replaceable stand-in
// that must be swapped for a real client before production traffic.
func buildGenerator(poolCfg config.ProviderPoolConfig) provider.Generator {
	if len(poolCfg.Endpoints) == 0 {
		slog.Warn("no provider endpoints configured, using single echo stand-in")
		return &echoProvider{id: "echo-default"}
	}

	providers := make([]provider.Provider, 0, len(poolCfg.Endpoints))
	weights := make(map[string]int, len(poolCfg.Endpoints))
	for _, ep := range poolCfg.Endpoints {
		providers = append(providers, &echoProvider{id: ep.ID})
		if ep.Weight > 0 {
			weights[ep.ID] = ep.Weight
		}
	}

	strategy := provider.Strategy(poolCfg.Strategy)
	if strategy == "" {
		strategy = provider.StrategyRoundRobin
	}
	return provider.NewPool(strategy, providers, weights)
}

// echoProvider is the operator-replaceable default Generator: it never
// calls out to a real model, it reflects the prompt back wrapped in a
// fixed disclaimer. It exists so boundaryd boots and the pipeline's
// axiom_out/express stages have something to exercise before an operator
// wires a real backend client satisfying provider.Provider.
type echoProvider struct {
	id string
}

func (e *echoProvider) ID() string { return e.id }

func (e *echoProvider) Generate(_ context.Context, req provider.Request) (provider.Result, error) {
	return provider.Result{Text: fmt.Sprintf("[%s stand-in] %s", e.id, req.Prompt)}, nil
}

func (e *echoProvider) Stream(ctx context.Context, req provider.Request) (<-chan provider.Chunk, <-chan error) {
	chunks := make(chan provider.Chunk, 1)
	errs := make(chan error, 1)
	go func() {
		defer close(chunks)
		defer close(errs)
		result, err := e.Generate(ctx, req)
		if err != nil {
			errs <- err
			return
		}
		chunks <- provider.Chunk{Text: result.Text, Done: true}
		errs <- nil
	}()
	return chunks, errs
}

// buildAlertService constructs the Slack alerting service from the
// standard SLACK_BOT_TOKEN / SLACK_ALERT_CHANNEL env pair. NewService is
// nil-safe: an unconfigured environment yields a nil *Service, whose
// methods are no-ops. The API server only stores the service; nothing
// in this module calls NotifyCrisisSignal on it.
func buildAlertService() *alerting.Service {
	return alerting.NewService(alerting.ServiceConfig{
		Token:        os.Getenv("SLACK_BOT_TOKEN"),
		Channel:      os.Getenv("SLACK_ALERT_CHANNEL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	})
}

// realtimeConnString builds the postgres connection string NotifyListener
// needs for its dedicated LISTEN connection, reusing the same credentials
// database.LoadConfigFromEnv already validated.
func realtimeConnString(cfg database.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)
}

// startGRPCHealth runs a bare grpc.health.v1 server on its own port so a
// k8s liveness/readiness probe can use the standard grpc_health_probe
// binary instead of an HTTP client. Returns the grpc.Server (stop it on
// shutdown) and the health.Server (flip it to NOT_SERVING first, so the
// probe fails before connections actually start getting refused).
func startGRPCHealth(port string) (*grpc.Server, *health.Server) {
	healthSvc := health.NewServer()
	healthSvc.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSvc)

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Printf("Warning: grpc health server failed to bind :%s: %v", port, err)
		return grpcServer, healthSvc
	}

	go func() {
		log.Printf("grpc health server listening on :%s", port)
		if err := grpcServer.Serve(ln); err != nil {
			log.Printf("grpc health server stopped: %v", err)
		}
	}()

	return grpcServer, healthSvc
}

// startRealtime wires the LISTEN/NOTIFY fan-out described in
// pkg/events: a NotificationAdapter backed by the shared DB pool serves
// catch-up queries, and a dedicated NotifyListener connection delivers
// live notifications to ConnectionManager's per-channel subscribers.
// Realtime is optional: REALTIME_DISABLED=1 skips it entirely, leaving
// the server to run with SetConnManager/SetEventPublisher unset.
func startRealtime(ctx context.Context, connString string, dbClient *database.Client) (*events.ConnectionManager, func()) {
	if getEnv("REALTIME_DISABLED", "") == "1" {
		return nil, nil
	}

	writeTimeout, err := time.ParseDuration(getEnv("REALTIME_WRITE_TIMEOUT", "5s"))
	if err != nil {
		writeTimeout = 5 * time.Second
	}

	querier := events.NewSQLNotificationQuerier(dbClient.DB())
	adapter := events.NewNotificationAdapter(querier)
	connManager := events.NewConnectionManager(adapter, writeTimeout)

	listener := events.NewNotifyListener(connString, connManager)
	listenCtx, cancel := context.WithCancel(ctx)
	if err := listener.Start(listenCtx); err != nil {
		log.Printf("Warning: realtime listener failed to start: %v", err)
		cancel()
		return nil, nil
	}

	return connManager, cancel
}
