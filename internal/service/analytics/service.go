package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/config"
	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type applicationRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service computes analytics reports over a user's applications.
type Service struct {
	log  *slog.Logger
	apps applicationRepo
	cfg  config.TrackerConfig
}

// NewService creates a new Analytics service.
func NewService(logger *slog.Logger, apps applicationRepo, cfg config.TrackerConfig) *Service {
	return &Service{
		log:  logger.With("service", "analytics"),
		apps: apps,
		cfg:  cfg,
	}
}

// GetReport loads the current user's applications and derives the report.
// The report is a snapshot: records changed mid-computation are not
// reconciled.
func (s *Service) GetReport(ctx context.Context, input ReportInput) (*Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	window, err := input.Window()
	if err != nil {
		return nil, err
	}

	apps, err := s.apps.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	report := ComputeReport(apps, window, time.Now().UTC(), s.cfg.ResponseTimeMaxDays)
	return &report, nil
}
