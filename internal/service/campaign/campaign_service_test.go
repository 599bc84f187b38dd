package campaign_test

import (
	"context"
	"errors"
	"testing"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/copp1723/lane-google-sub002/internal/service/campaign"
	"github.com/copp1723/lane-google-sub002/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func newTRM(t *testing.T) *mocks.MockManager {
	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })
	return mockTRM
}

func TestCampaignService_Create_Success(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleManager, nil).Once()
	mockCampaigns.On("Create", ctx, mock.MatchedBy(func(c *models.Campaign) bool {
		return c.AccountID == "acc1" && c.Status == campaign.StatusDraft && c.CreatedBy == "u1"
	})).Return("c1", nil).Once()

	budget := decimal.NewFromInt(3000)
	s := campaign.NewCampaignService(newTRM(t), mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Create(ctx, "u1", campaign.CreateInput{
		AccountID:     "acc1",
		Name:          "Spring Sale",
		Objective:     "sales",
		Channel:       "search",
		MonthlyBudget: &budget,
	})

	assert.NoError(t, err)
	assert.Equal(t, "c1", resp.CampaignID)
	assert.Equal(t, campaign.StatusDraft, resp.Status)
	assert.Equal(t, "3000.00", *resp.MonthlyBudget)
}

func TestCampaignService_Create_ForbiddenForAnalyst(t *testing.T) {
	ctx := context.Background()

	mockRoles := mocks.NewRoleGetter(t)
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleAnalyst, nil).Once()

	s := campaign.NewCampaignService(newTRM(t), nil, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Create(ctx, "u1", campaign.CreateInput{AccountID: "acc1", Name: "x"})

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, service.ErrForbidden))
}

func TestCampaignService_Update_RejectsNonDraft(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockCampaigns.On("GetById", ctx, "c1").Return(&models.Campaign{
		ID:        "c1",
		AccountID: "acc1",
		Status:    campaign.StatusActive,
	}, nil).Once()
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleManager, nil).Once()

	s := campaign.NewCampaignService(newTRM(t), mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Update(ctx, "u1", "c1", campaign.UpdateInput{Name: "renamed"})

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, campaign.ErrNotDraft))
}

func TestCampaignService_Transition_SubmitByManager(t *testing.T) {
	ctx := context.Background()

	mockTRM := newTRM(t)
	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockCampaigns.On("GetById", ctx, "c1").Return(&models.Campaign{
		ID:        "c1",
		AccountID: "acc1",
		Status:    campaign.StatusDraft,
	}, nil).Once()
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleManager, nil).Once()
	mockCampaigns.On("SetStatus", ctx, "c1", campaign.StatusPendingReview, (*string)(nil)).Return(nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	s := campaign.NewCampaignService(mockTRM, mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Transition(ctx, "u1", "c1", campaign.ActionSubmit)

	assert.NoError(t, err)
	assert.Equal(t, campaign.StatusPendingReview, resp.Status)
}

func TestCampaignService_Transition_ApproveRequiresAdmin(t *testing.T) {
	ctx := context.Background()

	mockTRM := newTRM(t)
	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockCampaigns.On("GetById", ctx, "c1").Return(&models.Campaign{
		ID:        "c1",
		AccountID: "acc1",
		Status:    campaign.StatusPendingReview,
	}, nil).Once()
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleManager, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.True(t, errors.Is(fn(ctx), service.ErrForbidden))
		}).
		Return(service.ErrForbidden).
		Once()

	s := campaign.NewCampaignService(mockTRM, mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Transition(ctx, "u1", "c1", campaign.ActionApprove)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, service.ErrForbidden))
}

func TestCampaignService_Transition_WrongSourceStatus(t *testing.T) {
	ctx := context.Background()

	mockTRM := newTRM(t)
	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockCampaigns.On("GetById", ctx, "c1").Return(&models.Campaign{
		ID:        "c1",
		AccountID: "acc1",
		Status:    campaign.StatusDraft,
	}, nil).Once()
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleOwner, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.True(t, errors.Is(fn(ctx), campaign.ErrInvalidTransition))
		}).
		Return(campaign.ErrInvalidTransition).
		Once()

	s := campaign.NewCampaignService(mockTRM, mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Transition(ctx, "u1", "c1", campaign.ActionLaunch)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, campaign.ErrInvalidTransition))
}

func TestCampaignService_Transition_UnknownAction(t *testing.T) {
	ctx := context.Background()

	s := campaign.NewCampaignService(newTRM(t), nil, nil, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.Transition(ctx, "u1", "c1", "archive")

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, campaign.ErrUnknownAction))
}

func TestCampaignService_Transition_PausePropagatesToGoogleAds(t *testing.T) {
	ctx := context.Background()

	mockTRM := newTRM(t)
	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)
	mockAccounts := mocks.NewAccountGetter(t)
	stub := ads.NewStub()

	mockCampaigns.On("GetById", ctx, "c1").Return(&models.Campaign{
		ID:         "c1",
		AccountID:  "acc1",
		ExternalID: strPtr("999"),
		Status:     campaign.StatusActive,
	}, nil).Once()
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleManager, nil).Once()
	mockCampaigns.On("SetStatus", ctx, "c1", campaign.StatusPaused, mock.MatchedBy(func(by *string) bool {
		return by != nil && *by == "u1"
	})).Return(nil).Once()
	mockAccounts.On("GetById", ctx, "acc1").Return(&models.Account{
		ID:               "acc1",
		GoogleCustomerID: "123-456-7890",
	}, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	s := campaign.NewCampaignService(mockTRM, mockCampaigns, mockRoles, mockAccounts, stub, sl.NewDiscardLogger())
	resp, err := s.Transition(ctx, "u1", "c1", campaign.ActionPause)

	assert.NoError(t, err)
	assert.Equal(t, campaign.StatusPaused, resp.Status)
	assert.True(t, stub.Paused("999"))
}

func TestCampaignService_Delete_OnlyDraft(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockCampaigns.On("GetById", ctx, "c1").Return(&models.Campaign{
		ID:        "c1",
		AccountID: "acc1",
		Status:    campaign.StatusCompleted,
	}, nil).Once()
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleOwner, nil).Once()

	s := campaign.NewCampaignService(newTRM(t), mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	err := s.Delete(ctx, "u1", "c1")

	assert.True(t, errors.Is(err, campaign.ErrNotDraft))
}

func TestCampaignService_List_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewCampaignProvider(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleViewer, nil).Once()
	mockCampaigns.On("ListByAccount", ctx, "acc1", 100, 0).Return([]*models.Campaign{}, nil).Once()

	s := campaign.NewCampaignService(newTRM(t), mockCampaigns, mockRoles, nil, ads.NewStub(), sl.NewDiscardLogger())
	resp, err := s.List(ctx, "u1", "acc1", 500, -5)

	assert.NoError(t, err)
	assert.Empty(t, resp)
}
