package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. Get
// ---------------------------------------------------------------------------

// Get returns a single application owned by the current user.
func (s *Service) Get(ctx context.Context, appID uuid.UUID) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if appID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	app, err := s.apps.GetByID(ctx, userID, appID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	return app, nil
}
