package credential

import (
	"context"
	"sync"

	"github.com/classline/backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Account, error)
	UpdateSignatureFunc func(ctx context.Context, id int64, signature string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateSignature []struct {
			Ctx       context.Context
			ID        int64
			Signature string
		}
	}
	lockGetByID         sync.RWMutex
	lockUpdateSignature sync.RWMutex
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

func (mock *accountRepoMock) UpdateSignature(ctx context.Context, id int64, signature string) error {
	if mock.UpdateSignatureFunc == nil {
		panic("accountRepoMock.UpdateSignatureFunc: method is nil but accountRepo.UpdateSignature was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        int64
		Signature string
	}{Ctx: ctx, ID: id, Signature: signature}
	mock.lockUpdateSignature.Lock()
	mock.calls.UpdateSignature = append(mock.calls.UpdateSignature, callInfo)
	mock.lockUpdateSignature.Unlock()
	return mock.UpdateSignatureFunc(ctx, id, signature)
}

func (mock *accountRepoMock) UpdateSignatureCalls() []struct {
	Ctx       context.Context
	ID        int64
	Signature string
} {
	mock.lockUpdateSignature.RLock()
	calls := mock.calls.UpdateSignature
	mock.lockUpdateSignature.RUnlock()
	return calls
}
