package api

import "time"

type UserSchema struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  UserSchema `json:"user"`
}

type AccountSchema struct {
	AccountID        string          `json:"account_id"`
	Name             string          `json:"name"`
	GoogleCustomerID string          `json:"google_customer_id"`
	AutoPauseEnabled bool            `json:"auto_pause_enabled"`
	Members          []AccountMember `json:"members,omitempty"`
}

type AccountMember struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type AccountResponse struct {
	Account AccountSchema `json:"account"`
}

type AccountListResponse struct {
	Accounts []AccountSchema `json:"accounts"`
}

type CampaignSchema struct {
	CampaignID    string     `json:"campaign_id"`
	AccountID     string     `json:"account_id"`
	ExternalID    *string    `json:"external_id,omitempty"`
	Name          string     `json:"name"`
	Objective     string     `json:"objective"`
	Channel       string     `json:"channel"`
	Status        string     `json:"status"`
	DailyBudget   *string    `json:"daily_budget,omitempty"`
	MonthlyBudget *string    `json:"monthly_budget,omitempty"`
	Targeting     *string    `json:"targeting,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type CampaignResponse struct {
	Campaign CampaignSchema `json:"campaign"`
}

type CampaignListResponse struct {
	Campaigns []CampaignSchema `json:"campaigns"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
}

type PacingRow struct {
	CampaignID     string  `json:"campaign_id"`
	CampaignName   string  `json:"campaign_name"`
	Status         string  `json:"status"`
	MonthlyBudget  string  `json:"monthly_budget"`
	MonthToDate    string  `json:"month_to_date"`
	Projected      string  `json:"projected"`
	PacingRatio    float64 `json:"pacing_ratio"`
	Classification string  `json:"classification"`
	Action         string  `json:"recommended_action"`
}

type PacingSummaryResponse struct {
	AccountID     string      `json:"account_id"`
	MonthlyBudget string      `json:"monthly_budget"`
	MonthToDate   string      `json:"month_to_date"`
	Projected     string      `json:"projected"`
	Campaigns     []PacingRow `json:"campaigns"`
	GeneratedAt   time.Time   `json:"generated_at"`
}

type PerformanceRow struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
	Conversions  int64  `json:"conversions"`
}

type PerformanceTotals struct {
	Spend          string  `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	CPC            string  `json:"cpc"`
	CPA            string  `json:"cpa"`
	ConversionRate float64 `json:"conversion_rate"`
}

type PerformanceSummaryResponse struct {
	AccountID   string            `json:"account_id"`
	Days        int               `json:"days"`
	Totals      PerformanceTotals `json:"totals"`
	Campaigns   []PerformanceRow  `json:"campaigns"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type MonitoringStatusResponse struct {
	AccountID     string         `json:"account_id"`
	Database      string         `json:"database"`
	Cache         string         `json:"cache"`
	GoogleAds     string         `json:"google_ads"`
	LastPacingRun *time.Time     `json:"last_pacing_run,omitempty"`
	Campaigns     map[string]int `json:"campaigns"`
	CheckedAt     time.Time      `json:"checked_at"`
}

type ConversationSchema struct {
	ConversationID string `json:"conversation_id"`
	AccountID      string `json:"account_id"`
	Title          string `json:"title"`
}

type ConversationResponse struct {
	Conversation ConversationSchema `json:"conversation"`
}

type MessageSchema struct {
	MessageID string `json:"message_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

type ChatResponse struct {
	ConversationID string        `json:"conversation_id"`
	Reply          MessageSchema `json:"reply"`
}

type BriefSchema struct {
	BriefID        string `json:"brief_id"`
	ConversationID string `json:"conversation_id"`
	AccountID      string `json:"account_id"`
	Objective      string `json:"objective"`
	Audience       string `json:"audience"`
	MonthlyBudget  string `json:"monthly_budget"`
	Channels       string `json:"channels"`
	Timeline       string `json:"timeline"`
	KeyMessages    string `json:"key_messages"`
}

type BriefResponse struct {
	Brief BriefSchema `json:"brief"`
}
