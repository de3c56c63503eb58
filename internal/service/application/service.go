package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/config"
	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type applicationRepo interface {
	GetByID(ctx context.Context, userID, appID uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ApplicationFilter) ([]domain.Application, int, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	Update(ctx context.Context, userID, appID uuid.UUID, patch domain.ApplicationPatch) (*domain.Application, error)
	Delete(ctx context.Context, userID, appID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the application-tracking business logic.
type Service struct {
	log  *slog.Logger
	apps applicationRepo
	cfg  config.TrackerConfig
}

// NewService creates a new Application service.
func NewService(logger *slog.Logger, apps applicationRepo, cfg config.TrackerConfig) *Service {
	return &Service{
		log:  logger.With("service", "application"),
		apps: apps,
		cfg:  cfg,
	}
}
