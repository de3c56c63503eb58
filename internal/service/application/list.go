package application

import (
	"context"
	"fmt"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 3. List
// ---------------------------------------------------------------------------

// ListResult is a page of applications plus the total match count.
type ListResult struct {
	Applications []domain.Application
	Total        int
}

// List returns the current user's applications matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ApplicationFilter) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}

	apps, total, err := s.apps.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return &ListResult{Applications: apps, Total: total}, nil
}
