package alerting

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// CrisisSignalInput contains data for a crisis escalation notification.
type CrisisSignalInput struct {
	InstanceID string
	Level      string // critical, warning
	Category   string
	Timestamp  string
}

// Service handles on-call Slack notification delivery for crisis signals.
// Nil-safe: all methods are no-ops when the service is nil, so callers
// can wire it unconditionally even when alerting isn't configured.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new alerting Service. Returns nil if Token or
// Channel is empty, so an unconfigured deployment simply doesn't alert.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "alerting-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing against a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "alerting-service"),
	}
}

// NotifyCrisisSignal posts (or threads onto an existing) crisis alert.
// Only CRITICAL-tier signals should reach this method — callers decide
// severity routing; this always alerts once invoked. Fail-open: errors
// are logged, never returned, so a Slack outage cannot block the
// pipeline that triggered the signal.
func (s *Service) NotifyCrisisSignal(ctx context.Context, input CrisisSignalInput) {
	if s == nil {
		return
	}

	fingerprint := ComputeFingerprint(input.InstanceID, input.Level, input.Category)

	threadTS, err := s.client.FindMessageByFingerprint(ctx, fingerprint)
	if err != nil {
		s.logger.Warn("Failed to search for existing crisis thread",
			"instance_id", input.InstanceID,
			"fingerprint", fingerprint,
			"error", err)
	}

	blocks := BuildCrisisMessage(CrisisAlertInput{
		InstanceID:  input.InstanceID,
		Level:       input.Level,
		Category:    input.Category,
		Fingerprint: fingerprint,
		Timestamp:   input.Timestamp,
	}, s.dashboardURL)

	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send crisis alert",
			"instance_id", input.InstanceID,
			"level", input.Level,
			"category", input.Category,
			"error", err)
	}
}
