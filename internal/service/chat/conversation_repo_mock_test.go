package chat

import (
	"context"
	"sync"

	"github.com/classline/backend/internal/domain"
)

var _ conversationRepo = &conversationRepoMock{}

type conversationRepoMock struct {
	CreateFunc       func(ctx context.Context, name *string) (*domain.Conversation, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Conversation, error)
	DeleteFunc       func(ctx context.Context, id int64) error
	AddMemberFunc    func(ctx context.Context, conversationID, accountID int64, admin bool) error
	RemoveMemberFunc func(ctx context.Context, conversationID, accountID int64) error
	IsMemberFunc     func(ctx context.Context, conversationID, accountID int64) (bool, error)
	ListMembersFunc  func(ctx context.Context, conversationID int64) ([]domain.Member, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Name *string
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		AddMember []struct {
			Ctx            context.Context
			ConversationID int64
			AccountID      int64
			Admin          bool
		}
		RemoveMember []struct {
			Ctx            context.Context
			ConversationID int64
			AccountID      int64
		}
		IsMember []struct {
			Ctx            context.Context
			ConversationID int64
			AccountID      int64
		}
		ListMembers []struct {
			Ctx            context.Context
			ConversationID int64
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockDelete       sync.RWMutex
	lockAddMember    sync.RWMutex
	lockRemoveMember sync.RWMutex
	lockIsMember     sync.RWMutex
	lockListMembers  sync.RWMutex
}

func (mock *conversationRepoMock) Create(ctx context.Context, name *string) (*domain.Conversation, error) {
	if mock.CreateFunc == nil {
		panic("conversationRepoMock.CreateFunc: method is nil but conversationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name *string
	}{Ctx: ctx, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *conversationRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Name *string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *conversationRepoMock) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	if mock.GetByIDFunc == nil {
		panic("conversationRepoMock.GetByIDFunc: method is nil but conversationRepo.GetByID was just called")
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

func (mock *conversationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *conversationRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("conversationRepoMock.DeleteFunc: method is nil but conversationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *conversationRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *conversationRepoMock) AddMember(ctx context.Context, conversationID, accountID int64, admin bool) error {
	if mock.AddMemberFunc == nil {
		panic("conversationRepoMock.AddMemberFunc: method is nil but conversationRepo.AddMember was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID int64
		AccountID      int64
		Admin          bool
	}{Ctx: ctx, ConversationID: conversationID, AccountID: accountID, Admin: admin}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, conversationID, accountID, admin)
}

func (mock *conversationRepoMock) AddMemberCalls() []struct {
	Ctx            context.Context
	ConversationID int64
	AccountID      int64
	Admin          bool
} {
	mock.lockAddMember.RLock()
	calls := mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *conversationRepoMock) RemoveMember(ctx context.Context, conversationID, accountID int64) error {
	if mock.RemoveMemberFunc == nil {
		panic("conversationRepoMock.RemoveMemberFunc: method is nil but conversationRepo.RemoveMember was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID int64
		AccountID      int64
	}{Ctx: ctx, ConversationID: conversationID, AccountID: accountID}
	mock.lockRemoveMember.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, callInfo)
	mock.lockRemoveMember.Unlock()
	return mock.RemoveMemberFunc(ctx, conversationID, accountID)
}

func (mock *conversationRepoMock) RemoveMemberCalls() []struct {
	Ctx            context.Context
	ConversationID int64
	AccountID      int64
} {
	mock.lockRemoveMember.RLock()
	calls := mock.calls.RemoveMember
	mock.lockRemoveMember.RUnlock()
	return calls
}

func (mock *conversationRepoMock) IsMember(ctx context.Context, conversationID, accountID int64) (bool, error) {
	if mock.IsMemberFunc == nil {
		panic("conversationRepoMock.IsMemberFunc: method is nil but conversationRepo.IsMember was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID int64
		AccountID      int64
	}{Ctx: ctx, ConversationID: conversationID, AccountID: accountID}
	mock.lockIsMember.Lock()
	mock.calls.IsMember = append(mock.calls.IsMember, callInfo)
	mock.lockIsMember.Unlock()
	return mock.IsMemberFunc(ctx, conversationID, accountID)
}

func (mock *conversationRepoMock) IsMemberCalls() []struct {
	Ctx            context.Context
	ConversationID int64
	AccountID      int64
} {
	mock.lockIsMember.RLock()
	calls := mock.calls.IsMember
	mock.lockIsMember.RUnlock()
	return calls
}

func (mock *conversationRepoMock) ListMembers(ctx context.Context, conversationID int64) ([]domain.Member, error) {
	if mock.ListMembersFunc == nil {
		panic("conversationRepoMock.ListMembersFunc: method is nil but conversationRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID int64
	}{Ctx: ctx, ConversationID: conversationID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, conversationID)
}

func (mock *conversationRepoMock) ListMembersCalls() []struct {
	Ctx            context.Context
	ConversationID int64
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}
