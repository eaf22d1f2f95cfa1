package account

import (
	"context"
	"sync"

	"github.com/classline/backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc     func(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Account, error)
	ConfirmFunc    func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			Account *domain.Account
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Confirm []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
	lockConfirm    sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Account *domain.Account
	}{Ctx: ctx, Account: account}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, account)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Account *domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if mock.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *accountRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *accountRepoMock) Confirm(ctx context.Context, id int64) error {
	if mock.ConfirmFunc == nil {
		panic("accountRepoMock.ConfirmFunc: method is nil but accountRepo.Confirm was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockConfirm.Lock()
	mock.calls.Confirm = append(mock.calls.Confirm, callInfo)
	mock.lockConfirm.Unlock()
	return mock.ConfirmFunc(ctx, id)
}

func (mock *accountRepoMock) ConfirmCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockConfirm.RLock()
	calls := mock.calls.Confirm
	mock.lockConfirm.RUnlock()
	return calls
}
