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
// 1. Create
// ---------------------------------------------------------------------------

// Create records a new job application for the current user.
// When the initial status is anything other than Not Applied, the same
// transition rules as a status change apply (set-once application date,
// suggested follow-up), unless the caller supplied those fields explicitly.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.apps.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if count >= s.cfg.MaxApplicationsPerUser {
		return nil, domain.NewValidationError("applications", "limit reached")
	}

	status := domain.StatusNotApplied
	if input.Status != nil {
		status = *input.Status
	}

	app := &domain.Application{
		ID:                uuid.New(),
		UserID:            userID,
		Company:           input.Company,
		Position:          input.Position,
		Status:            domain.StatusNotApplied,
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

	// Route the initial status through the transition rules so a record
	// created directly as Applied still gets its application date stamped.
	patch := ProposeTransition(app, status, time.Now().UTC())
	app.Status = *patch.Status
	if patch.ApplicationDate != nil && app.ApplicationDate == nil {
		app.ApplicationDate = patch.ApplicationDate
	}
	if app.NextActionDate == nil && patch.NextActionDate != nil {
		app.NextActionDate = patch.NextActionDate
		app.NextActionStep = patch.NextActionStep
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.InfoContext(ctx, "application created",
		"application_id", created.ID,
		"status", created.Status,
	)

	return created, nil
}
