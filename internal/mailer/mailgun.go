package mailer

import (
	"context"
	"fmt"

	"github.com/copp1723/lane-google-sub002/internal/lib/config"
	"github.com/copp1723/lane-google-sub002/internal/queue"
	"github.com/mailgun/mailgun-go/v4"
)

// Sender delivers budget alert emails.
type Sender interface {
	SendBudgetAlert(ctx context.Context, to string, alert queue.BudgetAlert) error
}

type mailgunSender struct {
	mg     *mailgun.MailgunImpl
	sender string
}

func New(cfg config.Mailgun) Sender {
	return &mailgunSender{
		mg:     mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
		sender: cfg.Sender,
	}
}

func (s *mailgunSender) SendBudgetAlert(ctx context.Context, to string, alert queue.BudgetAlert) error {
	subject := fmt.Sprintf("[%s] budget pacing: %s %s", alert.AccountName, alert.CampaignName, alert.Action)
	body := fmt.Sprintf(
		"Campaign %q in account %q was classified %s (pacing ratio %.2f).\n"+
			"Projected month spend %s against a monthly budget of %s.\n"+
			"Automated action taken: %s.\n",
		alert.CampaignName,
		alert.AccountName,
		alert.Classification,
		alert.PacingRatio,
		alert.Projected,
		alert.MonthlyBudget,
		alert.Action,
	)

	msg := s.mg.NewMessage(s.sender, subject, body, to)
	_, _, err := s.mg.Send(ctx, msg)
	return err
}
