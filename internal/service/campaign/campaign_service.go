package campaign

import (
	"context"
	"errors"
	"log/slog"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
	StatusActive        = "active"
	StatusPaused        = "paused"
	StatusCompleted     = "completed"
	StatusRejected      = "rejected"
)

const (
	ActionSubmit   = "submit"
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionRevise   = "revise"
	ActionLaunch   = "launch"
	ActionPause    = "pause"
	ActionResume   = "resume"
	ActionComplete = "complete"
)

var (
	ErrInvalidTransition = errors.New("campaign status does not allow this action")
	ErrNotDraft          = errors.New("only draft campaigns can be modified")
	ErrUnknownAction     = errors.New("unknown workflow action")
)

// transition describes one edge of the approval workflow.
type transition struct {
	from    string
	to      string
	minRole string
}

var workflow = map[string]transition{
	ActionSubmit:   {from: StatusDraft, to: StatusPendingReview, minRole: service.RoleManager},
	ActionApprove:  {from: StatusPendingReview, to: StatusApproved, minRole: service.RoleAdmin},
	ActionReject:   {from: StatusPendingReview, to: StatusRejected, minRole: service.RoleAdmin},
	ActionRevise:   {from: StatusRejected, to: StatusDraft, minRole: service.RoleManager},
	ActionLaunch:   {from: StatusApproved, to: StatusActive, minRole: service.RoleManager},
	ActionPause:    {from: StatusActive, to: StatusPaused, minRole: service.RoleManager},
	ActionResume:   {from: StatusPaused, to: StatusActive, minRole: service.RoleManager},
	ActionComplete: {from: StatusActive, to: StatusCompleted, minRole: service.RoleManager},
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CampaignProvider
type CampaignProvider interface {
	Create(ctx context.Context, campaign *models.Campaign) (string, error)
	GetById(ctx context.Context, campaignID string) (*models.Campaign, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	SetStatus(ctx context.Context, campaignID, status string, pausedBy *string) error
	Delete(ctx context.Context, campaignID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RoleGetter
type RoleGetter interface {
	GetMemberRole(ctx context.Context, accountID, userID string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountGetter
type AccountGetter interface {
	GetById(ctx context.Context, accountID string) (*models.Account, error)
}

type CampaignService struct {
	campaigns CampaignProvider
	roles     RoleGetter
	accounts  AccountGetter
	adsClient ads.Client
	trm       service.TransactionManager
	log       *slog.Logger
}

func NewCampaignService(
	trm service.TransactionManager,
	campaigns CampaignProvider,
	roles RoleGetter,
	accounts AccountGetter,
	adsClient ads.Client,
	log *slog.Logger,
) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		roles:     roles,
		accounts:  accounts,
		adsClient: adsClient,
		trm:       trm,
		log:       log,
	}
}

type CreateInput struct {
	AccountID     string
	Name          string
	Objective     string
	Channel       string
	DailyBudget   *decimal.Decimal
	MonthlyBudget *decimal.Decimal
	Targeting     *string
}

func (s *CampaignService) Create(ctx context.Context, callerID string, input CreateInput) (*api.CampaignSchema, error) {
	if err := s.requireRole(ctx, input.AccountID, callerID, service.RoleManager); err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		ID:            uuid.NewString(),
		AccountID:     input.AccountID,
		Name:          input.Name,
		Objective:     input.Objective,
		Channel:       input.Channel,
		Status:        StatusDraft,
		DailyBudget:   input.DailyBudget,
		MonthlyBudget: input.MonthlyBudget,
		Targeting:     input.Targeting,
		CreatedBy:     callerID,
	}

	campaignID, err := s.campaigns.Create(ctx, campaign)
	if err != nil {
		return nil, err
	}
	campaign.ID = campaignID

	return toCampaignSchema(campaign), nil
}

func (s *CampaignService) Get(ctx context.Context, callerID, campaignID string) (*api.CampaignSchema, error) {
	campaign, err := s.campaigns.GetById(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.requireRole(ctx, campaign.AccountID, callerID, service.RoleViewer); err != nil {
		return nil, err
	}

	return toCampaignSchema(campaign), nil
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

func (s *CampaignService) List(ctx context.Context, callerID, accountID string, limit, offset int) ([]api.CampaignSchema, error) {
	if err := s.requireRole(ctx, accountID, callerID, service.RoleViewer); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	campaigns, err := s.campaigns.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := make([]api.CampaignSchema, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, *toCampaignSchema(c))
	}
	return resp, nil
}

type UpdateInput struct {
	Name          string
	Objective     string
	Channel       string
	DailyBudget   *decimal.Decimal
	MonthlyBudget *decimal.Decimal
	Targeting     *string
}

func (s *CampaignService) Update(ctx context.Context, callerID, campaignID string, input UpdateInput) (*api.CampaignSchema, error) {
	campaign, err := s.campaigns.GetById(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.requireRole(ctx, campaign.AccountID, callerID, service.RoleManager); err != nil {
		return nil, err
	}

	if campaign.Status != StatusDraft {
		return nil, ErrNotDraft
	}

	campaign.Name = input.Name
	campaign.Objective = input.Objective
	campaign.Channel = input.Channel
	campaign.DailyBudget = input.DailyBudget
	campaign.MonthlyBudget = input.MonthlyBudget
	campaign.Targeting = input.Targeting

	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignSchema(campaign), nil
}

func (s *CampaignService) Delete(ctx context.Context, callerID, campaignID string) error {
	campaign, err := s.campaigns.GetById(ctx, campaignID)
	if err != nil {
		return err
	}

	if err := s.requireRole(ctx, campaign.AccountID, callerID, service.RoleManager); err != nil {
		return err
	}

	if campaign.Status != StatusDraft {
		return ErrNotDraft
	}

	return s.campaigns.Delete(ctx, campaignID)
}

// Transition applies one approval-workflow action to the campaign.
// Pause and resume propagate to Google Ads when the campaign is linked.
func (s *CampaignService) Transition(ctx context.Context, callerID, campaignID, action string) (*api.CampaignSchema, error) {
	tr, ok := workflow[action]
	if !ok {
		return nil, ErrUnknownAction
	}

	resp := &api.CampaignSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		campaign, err := s.campaigns.GetById(ctx, campaignID)
		if err != nil {
			return err
		}

		if err := s.requireRole(ctx, campaign.AccountID, callerID, tr.minRole); err != nil {
			return err
		}

		if campaign.Status != tr.from {
			return ErrInvalidTransition
		}

		var pausedBy *string
		if action == ActionPause {
			by := callerID
			pausedBy = &by
		}

		if err := s.campaigns.SetStatus(ctx, campaignID, tr.to, pausedBy); err != nil {
			return err
		}

		if action == ActionPause || action == ActionResume {
			s.propagateStatus(ctx, campaign, action)
		}

		campaign.Status = tr.to
		campaign.PausedBy = pausedBy
		*resp = *toCampaignSchema(campaign)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// propagateStatus mirrors pause/resume to Google Ads. A failed call is
// logged, not fatal: the local status is authoritative and the collector
// reconciles spend regardless.
func (s *CampaignService) propagateStatus(ctx context.Context, campaign *models.Campaign, action string) {
	if campaign.ExternalID == nil {
		return
	}

	account, err := s.accounts.GetById(ctx, campaign.AccountID)
	if err != nil {
		s.log.Error("failed to resolve account for ads call", sl.Err(err))
		return
	}

	if action == ActionPause {
		err = s.adsClient.PauseCampaign(ctx, account.GoogleCustomerID, *campaign.ExternalID)
	} else {
		err = s.adsClient.ResumeCampaign(ctx, account.GoogleCustomerID, *campaign.ExternalID)
	}
	if err != nil {
		s.log.Error("google ads status propagation failed",
			slog.String("campaign_id", campaign.ID), sl.Err(err))
	}
}

func (s *CampaignService) requireRole(ctx context.Context, accountID, userID, min string) error {
	role, err := s.roles.GetMemberRole(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if !service.RoleAtLeast(role, min) {
		return service.ErrForbidden
	}
	return nil
}

func toCampaignSchema(c *models.Campaign) *api.CampaignSchema {
	resp := &api.CampaignSchema{
		CampaignID: c.ID,
		AccountID:  c.AccountID,
		ExternalID: c.ExternalID,
		Name:       c.Name,
		Objective:  c.Objective,
		Channel:    c.Channel,
		Status:     c.Status,
		Targeting:  c.Targeting,
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.DailyBudget != nil {
		v := c.DailyBudget.StringFixed(2)
		resp.DailyBudget = &v
	}
	if c.MonthlyBudget != nil {
		v := c.MonthlyBudget.StringFixed(2)
		resp.MonthlyBudget = &v
	}
	return resp
}
