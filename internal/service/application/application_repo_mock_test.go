package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, appID uuid.UUID) (*domain.Application, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.ApplicationFilter) ([]domain.Application, int, error)
	CountFunc   func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc  func(ctx context.Context, app *domain.Application) (*domain.Application, error)
	UpdateFunc  func(ctx context.Context, userID, appID uuid.UUID, patch domain.ApplicationPatch) (*domain.Application, error)
	DeleteFunc  func(ctx context.Context, userID, appID uuid.UUID) error

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			AppID  uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.ApplicationFilter
		}
		Count []struct {
			UserID uuid.UUID
		}
		Create []struct {
			App *domain.Application
		}
		Update []struct {
			UserID uuid.UUID
			AppID  uuid.UUID
			Patch  domain.ApplicationPatch
		}
		Delete []struct {
			UserID uuid.UUID
			AppID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, userID, appID uuid.UUID) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		AppID  uuid.UUID
	}{UserID: userID, AppID: appID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, appID)
}

func (mock *applicationRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	AppID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *applicationRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.ApplicationFilter) ([]domain.Application, int, error) {
	if mock.ListFunc == nil {
		panic("applicationRepoMock.ListFunc: method is nil but applicationRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.ApplicationFilter
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *applicationRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.ApplicationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("applicationRepoMock.CountFunc: method is nil but applicationRepo.Count was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID)
}

func (mock *applicationRepoMock) CountCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		App *domain.Application
	}{App: app}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, app)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	App *domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Update(ctx context.Context, userID, appID uuid.UUID, patch domain.ApplicationPatch) (*domain.Application, error) {
	if mock.UpdateFunc == nil {
		panic("applicationRepoMock.UpdateFunc: method is nil but applicationRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		AppID  uuid.UUID
		Patch  domain.ApplicationPatch
	}{UserID: userID, AppID: appID, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, appID, patch)
}

func (mock *applicationRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	AppID  uuid.UUID
	Patch  domain.ApplicationPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Delete(ctx context.Context, userID, appID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("applicationRepoMock.DeleteFunc: method is nil but applicationRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		AppID  uuid.UUID
	}{UserID: userID, AppID: appID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, appID)
}

func (mock *applicationRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	AppID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
