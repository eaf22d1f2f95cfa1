package account

import (
	"context"
	"sync"

	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

var (
	_ groupRepo       = &groupRepoMock{}
	_ tokenRegistry   = &tokenRegistryMock{}
	_ credentialStore = &credentialStoreMock{}
	_ txManager       = &txManagerMock{}
)

type groupRepoMock struct {
	AddGroupMemberFunc func(ctx context.Context, groupID, accountID int64) error

	calls struct {
		AddGroupMember []struct {
			Ctx       context.Context
			GroupID   int64
			AccountID int64
		}
	}
	lockAddGroupMember sync.RWMutex
}

func (mock *groupRepoMock) AddGroupMember(ctx context.Context, groupID, accountID int64) error {
	if mock.AddGroupMemberFunc == nil {
		panic("groupRepoMock.AddGroupMemberFunc: method is nil but groupRepo.AddGroupMember was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		GroupID   int64
		AccountID int64
	}{Ctx: ctx, GroupID: groupID, AccountID: accountID}
	mock.lockAddGroupMember.Lock()
	mock.calls.AddGroupMember = append(mock.calls.AddGroupMember, callInfo)
	mock.lockAddGroupMember.Unlock()
	return mock.AddGroupMemberFunc(ctx, groupID, accountID)
}

func (mock *groupRepoMock) AddGroupMemberCalls() []struct {
	Ctx       context.Context
	GroupID   int64
	AccountID int64
} {
	mock.lockAddGroupMember.RLock()
	calls := mock.calls.AddGroupMember
	mock.lockAddGroupMember.RUnlock()
	return calls
}

type tokenRegistryMock struct {
	IssueFunc  func(ctx context.Context, input token.IssueInput) (*domain.ActionToken, error)
	RedeemFunc func(ctx context.Context, url string) (*domain.ActionToken, error)

	calls struct {
		Issue []struct {
			Ctx   context.Context
			Input token.IssueInput
		}
		Redeem []struct {
			Ctx context.Context
			URL string
		}
	}
	lockIssue  sync.RWMutex
	lockRedeem sync.RWMutex
}

func (mock *tokenRegistryMock) Issue(ctx context.Context, input token.IssueInput) (*domain.ActionToken, error) {
	if mock.IssueFunc == nil {
		panic("tokenRegistryMock.IssueFunc: method is nil but tokenRegistry.Issue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input token.IssueInput
	}{Ctx: ctx, Input: input}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(ctx, input)
}

func (mock *tokenRegistryMock) IssueCalls() []struct {
	Ctx   context.Context
	Input token.IssueInput
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenRegistryMock) Redeem(ctx context.Context, url string) (*domain.ActionToken, error) {
	if mock.RedeemFunc == nil {
		panic("tokenRegistryMock.RedeemFunc: method is nil but tokenRegistry.Redeem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		URL string
	}{Ctx: ctx, URL: url}
	mock.lockRedeem.Lock()
	mock.calls.Redeem = append(mock.calls.Redeem, callInfo)
	mock.lockRedeem.Unlock()
	return mock.RedeemFunc(ctx, url)
}

func (mock *tokenRegistryMock) RedeemCalls() []struct {
	Ctx context.Context
	URL string
} {
	mock.lockRedeem.RLock()
	calls := mock.calls.Redeem
	mock.lockRedeem.RUnlock()
	return calls
}

type credentialStoreMock struct {
	IssueFunc func(ctx context.Context, accountID int64) (string, error)

	calls struct {
		Issue []struct {
			Ctx       context.Context
			AccountID int64
		}
	}
	lockIssue sync.RWMutex
}

func (mock *credentialStoreMock) Issue(ctx context.Context, accountID int64) (string, error) {
	if mock.IssueFunc == nil {
		panic("credentialStoreMock.IssueFunc: method is nil but credentialStore.Issue was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID int64
	}{Ctx: ctx, AccountID: accountID}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(ctx, accountID)
}

func (mock *credentialStoreMock) IssueCalls() []struct {
	Ctx       context.Context
	AccountID int64
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
