package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/copp1723/lane-google-sub002/internal/models"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/copp1723/lane-google-sub002/internal/service/account"
	"github.com/copp1723/lane-google-sub002/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_Create_MakesCallerOwner(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockAccounts := mocks.NewAccountProvider(t)
	mockMembers := mocks.NewMemberProvider(t)
	mockUsers := mocks.NewUserGetter(t)

	mockAccounts.On("Create", ctx, mock.MatchedBy(func(a *models.Account) bool {
		return a.Name == "Acme" && a.GoogleCustomerID == "123-456-7890" && a.AutoPauseEnabled
	})).Return("acc1", nil).Once()
	mockMembers.On("UpsertMember", ctx, mock.MatchedBy(func(m *models.AccountUser) bool {
		return m.AccountID == "acc1" && m.UserID == "u1" && m.Role == service.RoleOwner
	})).Return(nil).Once()
	mockUsers.On("GetById", ctx, "u1").Return(&models.User{
		ID:       "u1",
		Email:    "alice@example.com",
		Name:     "Alice",
		IsActive: true,
	}, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	s := account.NewAccountService(mockTRM, mockAccounts, mockMembers, mockUsers)
	resp, err := s.Create(ctx, "u1", "Acme", "123-456-7890")

	assert.NoError(t, err)
	assert.Equal(t, "acc1", resp.AccountID)
	assert.True(t, resp.AutoPauseEnabled)
	assert.Len(t, resp.Members, 1)
	assert.Equal(t, service.RoleOwner, resp.Members[0].Role)
}

func TestAccountService_Create_DuplicateCustomerID(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockAccounts := mocks.NewAccountProvider(t)
	mockAccounts.On("Create", ctx, mock.AnythingOfType("*models.Account")).
		Return("", repo.ErrAccountExists).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.True(t, errors.Is(fn(ctx), repo.ErrAccountExists))
		}).
		Return(repo.ErrAccountExists).
		Once()

	s := account.NewAccountService(mockTRM, mockAccounts, nil, nil)
	resp, err := s.Create(ctx, "u1", "Acme", "123-456-7890")

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, repo.ErrAccountExists))
}

func TestAccountService_Get_IncludesMembers(t *testing.T) {
	ctx := context.Background()

	mockAccounts := mocks.NewAccountProvider(t)
	mockMembers := mocks.NewMemberProvider(t)

	mockMembers.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleViewer, nil).Once()
	mockAccounts.On("GetById", ctx, "acc1").Return(&models.Account{
		ID:               "acc1",
		Name:             "Acme",
		GoogleCustomerID: "123-456-7890",
		AutoPauseEnabled: true,
	}, nil).Once()
	mockMembers.On("ListMembers", ctx, "acc1").Return([]*models.Membership{
		{UserID: "u1", Email: "alice@example.com", Name: "Alice", Role: service.RoleOwner, IsActive: true},
		{UserID: "u2", Email: "bob@example.com", Name: "Bob", Role: service.RoleViewer, IsActive: true},
	}, nil).Once()

	s := account.NewAccountService(nil, mockAccounts, mockMembers, nil)
	resp, err := s.Get(ctx, "u1", "acc1")

	assert.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Len(t, resp.Members, 2)
}

func TestAccountService_Get_NotAMember(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberProvider(t)
	mockMembers.On("GetMemberRole", ctx, "acc1", "stranger").Return("", repo.ErrNotFound).Once()

	s := account.NewAccountService(nil, nil, mockMembers, nil)
	resp, err := s.Get(ctx, "stranger", "acc1")

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

func TestAccountService_SetMemberRole_Success(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberProvider(t)
	mockUsers := mocks.NewUserGetter(t)

	mockMembers.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleAdmin, nil).Once()
	mockUsers.On("GetById", ctx, "u2").Return(&models.User{
		ID:       "u2",
		Email:    "bob@example.com",
		Name:     "Bob",
		IsActive: true,
	}, nil).Once()
	mockMembers.On("UpsertMember", ctx, mock.MatchedBy(func(m *models.AccountUser) bool {
		return m.UserID == "u2" && m.Role == service.RoleManager
	})).Return(nil).Once()

	s := account.NewAccountService(nil, nil, mockMembers, mockUsers)
	resp, err := s.SetMemberRole(ctx, "u1", "acc1", "u2", service.RoleManager)

	assert.NoError(t, err)
	assert.Equal(t, service.RoleManager, resp.Role)
}

func TestAccountService_SetMemberRole_CannotGrantAboveOwnRole(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberProvider(t)
	mockMembers.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleAdmin, nil).Once()

	s := account.NewAccountService(nil, nil, mockMembers, nil)
	resp, err := s.SetMemberRole(ctx, "u1", "acc1", "u2", service.RoleOwner)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, service.ErrForbidden))
}

func TestAccountService_SetMemberRole_ManagerForbidden(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberProvider(t)
	mockMembers.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleManager, nil).Once()

	s := account.NewAccountService(nil, nil, mockMembers, nil)
	resp, err := s.SetMemberRole(ctx, "u1", "acc1", "u2", service.RoleViewer)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, service.ErrForbidden))
}

func TestAccountService_SetAutoPause(t *testing.T) {
	ctx := context.Background()

	mockAccounts := mocks.NewAccountProvider(t)
	mockMembers := mocks.NewMemberProvider(t)

	mockMembers.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleOwner, nil).Once()
	mockAccounts.On("SetAutoPause", ctx, "acc1", false).Return(nil).Once()

	s := account.NewAccountService(nil, mockAccounts, mockMembers, nil)
	assert.NoError(t, s.SetAutoPause(ctx, "u1", "acc1", false))
}
