package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/copp1723/lane-google-sub002/internal/lib/config"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/streadway/amqp"
)

// BudgetAlert is the job the pacing loop hands to the mail worker.
type BudgetAlert struct {
	Recipients     []string `json:"recipients"`
	AccountID      string   `json:"account_id"`
	AccountName    string   `json:"account_name"`
	CampaignID     string   `json:"campaign_id"`
	CampaignName   string   `json:"campaign_name"`
	Action         string   `json:"action"`
	PacingRatio    float64  `json:"pacing_ratio"`
	Classification string   `json:"classification"`
	Projected      string   `json:"projected"`
	MonthlyBudget  string   `json:"monthly_budget"`
}

// AlertPublisher is the queue surface the pacing service depends on.
type AlertPublisher interface {
	PublishAlert(alert BudgetAlert) error
}

type Queue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	name    string
}

// Connect dials the broker and declares the durable alert queue.
func Connect(cfg config.Queue) (*Queue, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(cfg.AlertQueue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Queue{conn: conn, channel: ch, name: cfg.AlertQueue}, nil
}

func (q *Queue) PublishAlert(alert BudgetAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	return q.channel.Publish("", q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// ConsumeAlerts delivers queued alerts to handler until ctx is cancelled.
// Failed jobs are rejected without requeue; dead-lettering is broker policy.
func (q *Queue) ConsumeAlerts(ctx context.Context, log *slog.Logger, handler func(ctx context.Context, alert BudgetAlert) error) error {
	deliveries, err := q.channel.Consume(q.name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}

			var alert BudgetAlert
			if err := json.Unmarshal(d.Body, &alert); err != nil {
				log.Error("dropping malformed alert job", sl.Err(err))
				d.Nack(false, false)
				continue
			}

			if err := handler(ctx, alert); err != nil {
				log.Error("alert job failed", slog.String("campaign_id", alert.CampaignID), sl.Err(err))
				d.Nack(false, false)
				continue
			}

			d.Ack(false)
		}
	}
}

func (q *Queue) Close() {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
}
