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
// 4. Update
// ---------------------------------------------------------------------------

// Update edits an application's fields. A status change inside an edit is
// routed through the transition rules; explicit date fields in the input
// always win over whatever the transition proposes, so a user can still
// clear or hand-pick dates.
func (s *Service) Update(ctx context.Context, appID uuid.UUID, input UpdateInput) (*domain.Application, error) {
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

	patch := domain.ApplicationPatch{
		Company:           input.Company,
		Position:          input.Position,
		Salary:            input.Salary,
		Location:          input.Location,
		JobType:           input.JobType,
		JobURL:            input.JobURL,
		ApplicationSource: input.ApplicationSource,
		ContactName:       input.ContactName,
		ContactEmail:      input.ContactEmail,
		Notes:             input.Notes,
		ApplicationDate:   input.ApplicationDate,
		NextActionDate:    input.NextActionDate,
		NextActionStep:    input.NextActionStep,
	}

	if input.Status != nil {
		transition := ProposeTransition(current, *input.Status, time.Now().UTC())
		patch.Status = transition.Status
		if patch.ApplicationDate == nil {
			patch.ApplicationDate = transition.ApplicationDate
		}
		if patch.NextActionDate == nil && patch.NextActionStep == nil {
			patch.NextActionDate = transition.NextActionDate
			patch.NextActionStep = transition.NextActionStep
		}
	}

	updated, err := s.apps.Update(ctx, userID, appID, patch)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.InfoContext(ctx, "application updated", "application_id", appID)

	return updated, nil
}
