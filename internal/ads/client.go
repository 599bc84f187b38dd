package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/lib/config"
	"github.com/shopspring/decimal"
)

// DailyMetrics is one campaign-day returned by a GAQL search.
type DailyMetrics struct {
	CampaignID  string
	Date        time.Time
	Spend       decimal.Decimal
	Impressions int64
	Clicks      int64
	Conversions int64
}

// Client is the surface the pacing loop and the collector need from Google Ads.
type Client interface {
	DailyMetrics(ctx context.Context, customerID string, since time.Time) ([]DailyMetrics, error)
	PauseCampaign(ctx context.Context, customerID, campaignID string) error
	ResumeCampaign(ctx context.Context, customerID, campaignID string) error
	Ping(ctx context.Context) error
}

type restClient struct {
	endpoint       string
	developerToken string
	accessToken    string
	loginCustomer  string
	httpClient     *http.Client
}

// New returns a Google Ads REST client, or the stub when no developer
// token is configured.
func New(cfg config.GoogleAds) Client {
	if strings.TrimSpace(cfg.DeveloperToken) == "" {
		return NewStub()
	}
	return &restClient{
		endpoint:       strings.TrimRight(cfg.Endpoint, "/"),
		developerToken: cfg.DeveloperToken,
		accessToken:    cfg.AccessToken,
		loginCustomer:  cfg.LoginCustomer,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

const dailyMetricsQuery = `
	SELECT campaign.id, segments.date, metrics.cost_micros,
	       metrics.impressions, metrics.clicks, metrics.conversions
	FROM campaign
	WHERE segments.date >= '%s'`

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results []struct {
		Campaign struct {
			ID string `json:"id"`
		} `json:"campaign"`
		Segments struct {
			Date string `json:"date"`
		} `json:"segments"`
		Metrics struct {
			CostMicros  int64   `json:"costMicros,string"`
			Impressions int64   `json:"impressions,string"`
			Clicks      int64   `json:"clicks,string"`
			Conversions float64 `json:"conversions"`
		} `json:"metrics"`
	} `json:"results"`
}

func (c *restClient) DailyMetrics(ctx context.Context, customerID string, since time.Time) ([]DailyMetrics, error) {
	path := fmt.Sprintf("/customers/%s/googleAds:search", customerID)
	reqBody := searchRequest{Query: fmt.Sprintf(dailyMetricsQuery, since.Format("2006-01-02"))}

	var resp searchResponse
	if err := c.do(ctx, path, reqBody, &resp); err != nil {
		return nil, err
	}

	metrics := make([]DailyMetrics, 0, len(resp.Results))
	for _, row := range resp.Results {
		day, err := time.Parse("2006-01-02", row.Segments.Date)
		if err != nil {
			return nil, fmt.Errorf("parse segment date %q: %w", row.Segments.Date, err)
		}
		metrics = append(metrics, DailyMetrics{
			CampaignID:  row.Campaign.ID,
			Date:        day,
			Spend:       decimal.New(row.Metrics.CostMicros, -6),
			Impressions: row.Metrics.Impressions,
			Clicks:      row.Metrics.Clicks,
			Conversions: int64(row.Metrics.Conversions),
		})
	}
	return metrics, nil
}

type mutateRequest struct {
	Operations []campaignOperation `json:"operations"`
}

type campaignOperation struct {
	UpdateMask string         `json:"updateMask"`
	Update     campaignUpdate `json:"update"`
}

type campaignUpdate struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
}

func (c *restClient) PauseCampaign(ctx context.Context, customerID, campaignID string) error {
	return c.setStatus(ctx, customerID, campaignID, "PAUSED")
}

func (c *restClient) ResumeCampaign(ctx context.Context, customerID, campaignID string) error {
	return c.setStatus(ctx, customerID, campaignID, "ENABLED")
}

func (c *restClient) setStatus(ctx context.Context, customerID, campaignID, status string) error {
	path := fmt.Sprintf("/customers/%s/campaigns:mutate", customerID)
	reqBody := mutateRequest{
		Operations: []campaignOperation{{
			UpdateMask: "status",
			Update: campaignUpdate{
				ResourceName: fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID),
				Status:       status,
			},
		}},
	}
	return c.do(ctx, path, reqBody, nil)
}

func (c *restClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *restClient) do(ctx context.Context, path string, body, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomer != "" {
		req.Header.Set("login-customer-id", c.loginCustomer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("google ads request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("google ads request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
