package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	ListAllFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Application, error)

	calls struct {
		ListAll []struct {
			UserID uuid.UUID
		}
	}
	lockListAll sync.RWMutex
}

func (mock *applicationRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error) {
	if mock.ListAllFunc == nil {
		panic("applicationRepoMock.ListAllFunc: method is nil but applicationRepo.ListAll was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *applicationRepoMock) ListAllCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
