package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 6. ChangeStatus
// ---------------------------------------------------------------------------

// ChangeStatus moves an application to a new pipeline status, applying the
// transition rules: a follow-up suggestion when appropriate and the set-once
// application date when moving to Applied.
func (s *Service) ChangeStatus(ctx context.Context, appID uuid.UUID, input ChangeStatusInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if appID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.apps.GetByID(ctx, userID, appID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	patch := ProposeTransition(current, input.Status, time.Now().UTC())

	updated, err := s.apps.Update(ctx, userID, appID, patch)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.InfoContext(ctx, "application status changed",
		"application_id", appID,
		"from", current.Status,
		"to", updated.Status,
	)

	return updated, nil
}
