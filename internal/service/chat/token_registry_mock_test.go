package chat

import (
	"context"
	"sync"

	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

var _ tokenRegistry = &tokenRegistryMock{}

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
