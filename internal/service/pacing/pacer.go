package pacing

import (
	"context"
	"log/slog"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/queue"
	"github.com/copp1723/lane-google-sub002/internal/service"
	campaignsvc "github.com/copp1723/lane-google-sub002/internal/service/campaign"
	"github.com/google/uuid"
)

// PausedBySystem marks campaigns the pacer has paused, so auto-resume only
// ever touches its own pauses and never a human's.
const PausedBySystem = "pacer"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountLister
type AccountLister interface {
	ListAll(ctx context.Context) ([]*models.Account, error)
	ListMembers(ctx context.Context, accountID string) ([]*models.Membership, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CampaignController
type CampaignController interface {
	ListActiveWithBudget(ctx context.Context, accountID string) ([]*models.Campaign, error)
	SetStatus(ctx context.Context, campaignID, status string, pausedBy *string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=DecisionRecorder
type DecisionRecorder interface {
	Record(ctx context.Context, decision *models.PacingDecision) error
}

// Pacer is the background enforcement loop: it evaluates every budgeted
// campaign on an interval, records the decision, and pauses or resumes
// campaigns when the account allows automated intervention.
type Pacer struct {
	accounts        AccountLister
	campaigns       CampaignController
	spends          SpendReader
	decisions       DecisionRecorder
	adsClient       ads.Client
	alerts          queue.AlertPublisher
	trm             service.TransactionManager
	log             *slog.Logger
	interval        time.Duration
	window          int
	resumeThreshold float64
}

func NewPacer(
	trm service.TransactionManager,
	accounts AccountLister,
	campaigns CampaignController,
	spends SpendReader,
	decisions DecisionRecorder,
	adsClient ads.Client,
	alerts queue.AlertPublisher,
	log *slog.Logger,
	interval time.Duration,
	window int,
	resumeThreshold float64,
) *Pacer {
	return &Pacer{
		accounts:        accounts,
		campaigns:       campaigns,
		spends:          spends,
		decisions:       decisions,
		adsClient:       adsClient,
		alerts:          alerts,
		trm:             trm,
		log:             log,
		interval:        interval,
		window:          window,
		resumeThreshold: resumeThreshold,
	}
}

// Run drives the loop until ctx is cancelled.
func (p *Pacer) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("budget pacer started", slog.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.log.Info("budget pacer stopped")
			return
		case <-ticker.C:
			if err := p.RunOnce(ctx); err != nil {
				p.log.Error("pacing run failed", sl.Err(err))
			}
		}
	}
}

// RunOnce performs a single evaluation pass over all accounts.
func (p *Pacer) RunOnce(ctx context.Context) error {
	accounts, err := p.accounts.ListAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, account := range accounts {
		if err := p.paceAccount(ctx, account, now); err != nil {
			p.log.Error("account pacing failed",
				slog.String("account_id", account.ID), sl.Err(err))
		}
	}
	return nil
}

func (p *Pacer) paceAccount(ctx context.Context, account *models.Account, now time.Time) error {
	campaigns, err := p.campaigns.ListActiveWithBudget(ctx, account.ID)
	if err != nil {
		return err
	}

	monthStart := MonthStart(now)
	for _, c := range campaigns {
		mtd, err := p.spends.MonthToDate(ctx, c.ID, monthStart, now)
		if err != nil {
			return err
		}
		trailing, err := p.spends.TrailingDaily(ctx, c.ID, p.window, now)
		if err != nil {
			return err
		}

		ev := Evaluate(*c.MonthlyBudget, mtd, trailing, now)

		decision := &models.PacingDecision{
			ID:             uuid.NewString(),
			CampaignID:     c.ID,
			MonthToDate:    ev.MonthToDate,
			Projected:      ev.Projected,
			PacingRatio:    ev.PacingRatio,
			Classification: ev.Classification,
			Action:         ev.Action,
		}
		if err := p.decisions.Record(ctx, decision); err != nil {
			return err
		}

		if err := p.enforce(ctx, account, c, ev); err != nil {
			p.log.Error("pacing enforcement failed",
				slog.String("campaign_id", c.ID), sl.Err(err))
		}
	}
	return nil
}

func (p *Pacer) enforce(ctx context.Context, account *models.Account, c *models.Campaign, ev Evaluation) error {
	if !account.AutoPauseEnabled {
		return nil
	}

	switch {
	case c.Status == campaignsvc.StatusActive && ev.Action == ActionPause:
		return p.pause(ctx, account, c, ev)
	case c.Status == campaignsvc.StatusPaused &&
		c.PausedBy != nil && *c.PausedBy == PausedBySystem &&
		ev.PacingRatio <= p.resumeThreshold:
		return p.resume(ctx, account, c, ev)
	}
	return nil
}

func (p *Pacer) pause(ctx context.Context, account *models.Account, c *models.Campaign, ev Evaluation) error {
	err := p.trm.Do(ctx, func(ctx context.Context) error {
		by := PausedBySystem
		return p.campaigns.SetStatus(ctx, c.ID, campaignsvc.StatusPaused, &by)
	})
	if err != nil {
		return err
	}

	if c.ExternalID != nil {
		if err := p.adsClient.PauseCampaign(ctx, account.GoogleCustomerID, *c.ExternalID); err != nil {
			p.log.Error("google ads pause failed", slog.String("campaign_id", c.ID), sl.Err(err))
		}
	}

	p.log.Info("campaign auto-paused",
		slog.String("campaign_id", c.ID),
		slog.Float64("pacing_ratio", ev.PacingRatio))

	return p.publishAlert(ctx, account, c, ev, "paused")
}

func (p *Pacer) resume(ctx context.Context, account *models.Account, c *models.Campaign, ev Evaluation) error {
	err := p.trm.Do(ctx, func(ctx context.Context) error {
		return p.campaigns.SetStatus(ctx, c.ID, campaignsvc.StatusActive, nil)
	})
	if err != nil {
		return err
	}

	if c.ExternalID != nil {
		if err := p.adsClient.ResumeCampaign(ctx, account.GoogleCustomerID, *c.ExternalID); err != nil {
			p.log.Error("google ads resume failed", slog.String("campaign_id", c.ID), sl.Err(err))
		}
	}

	p.log.Info("campaign auto-resumed",
		slog.String("campaign_id", c.ID),
		slog.Float64("pacing_ratio", ev.PacingRatio))

	return p.publishAlert(ctx, account, c, ev, "resumed")
}

func (p *Pacer) publishAlert(ctx context.Context, account *models.Account, c *models.Campaign, ev Evaluation, action string) error {
	if p.alerts == nil {
		return nil
	}

	members, err := p.accounts.ListMembers(ctx, account.ID)
	if err != nil {
		return err
	}

	recipients := make([]string, 0, len(members))
	for _, m := range members {
		if service.RoleAtLeast(m.Role, service.RoleAdmin) {
			recipients = append(recipients, m.Email)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	return p.alerts.PublishAlert(queue.BudgetAlert{
		Recipients:     recipients,
		AccountID:      account.ID,
		AccountName:    account.Name,
		CampaignID:     c.ID,
		CampaignName:   c.Name,
		Action:         action,
		PacingRatio:    ev.PacingRatio,
		Classification: ev.Classification,
		Projected:      ev.Projected.StringFixed(2),
		MonthlyBudget:  c.MonthlyBudget.StringFixed(2),
	})
}
