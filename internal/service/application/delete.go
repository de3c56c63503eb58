package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 5. Delete
// ---------------------------------------------------------------------------

// Delete permanently removes an application owned by the current user.
func (s *Service) Delete(ctx context.Context, appID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if appID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.apps.Delete(ctx, userID, appID); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	s.log.InfoContext(ctx, "application deleted", "application_id", appID)

	return nil
}
