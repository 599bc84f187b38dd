package brief

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/llm"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	campaignsvc "github.com/copp1723/lane-google-sub002/internal/service/campaign"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyConversation = errors.New("conversation has no messages to extract from")
	ErrBriefParse        = errors.New("model reply is not a valid brief")
)

const systemPrompt = `You are a Google Ads campaign planning assistant. Help the user ` +
	`shape a campaign: objective, audience, budget, channels and timeline. Be concise.`

const extractionPrompt = `Summarize the conversation into a campaign brief. Reply with ` +
	`JSON only, no prose, using exactly these keys: ` +
	`{"objective": "", "audience": "", "monthly_budget": "", "channels": "", "timeline": "", "key_messages": ""}`

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ConversationProvider
type ConversationProvider interface {
	Create(ctx context.Context, conv *models.Conversation) (string, error)
	GetById(ctx context.Context, convID string) (*models.Conversation, error)
	AppendMessage(ctx context.Context, msg *models.ConversationMessage) (string, error)
	ListMessages(ctx context.Context, convID string) ([]*models.ConversationMessage, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BriefProvider
type BriefProvider interface {
	Create(ctx context.Context, brief *models.Brief) (string, error)
	GetById(ctx context.Context, briefID string) (*models.Brief, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RoleGetter
type RoleGetter interface {
	GetMemberRole(ctx context.Context, accountID, userID string) (string, error)
}

// CampaignCreator turns an accepted brief into a draft campaign.
type CampaignCreator interface {
	Create(ctx context.Context, callerID string, input campaignsvc.CreateInput) (*api.CampaignSchema, error)
}

type BriefService struct {
	conversations ConversationProvider
	briefs        BriefProvider
	roles         RoleGetter
	campaigns     CampaignCreator
	model         llm.Client
	trm           service.TransactionManager
}

func NewBriefService(
	trm service.TransactionManager,
	conversations ConversationProvider,
	briefs BriefProvider,
	roles RoleGetter,
	campaigns CampaignCreator,
	model llm.Client,
) *BriefService {
	return &BriefService{
		conversations: conversations,
		briefs:        briefs,
		roles:         roles,
		campaigns:     campaigns,
		model:         model,
		trm:           trm,
	}
}

func (s *BriefService) StartConversation(ctx context.Context, callerID, accountID, title string) (*api.ConversationSchema, error) {
	if err := s.requireRole(ctx, accountID, callerID, service.RoleAnalyst); err != nil {
		return nil, err
	}

	conv := &models.Conversation{
		ID:        uuid.NewString(),
		AccountID: accountID,
		CreatedBy: callerID,
		Title:     title,
	}

	convID, err := s.conversations.Create(ctx, conv)
	if err != nil {
		return nil, err
	}

	return &api.ConversationSchema{
		ConversationID: convID,
		AccountID:      accountID,
		Title:          title,
	}, nil
}

// Chat appends the user message, asks the model for a reply with the full
// history as context, and stores both sides of the exchange. The whole
// exchange runs in one transaction so a failed completion leaves no
// half-written turn behind.
func (s *BriefService) Chat(ctx context.Context, callerID, convID, content string) (*api.ChatResponse, error) {
	conv, err := s.conversations.GetById(ctx, convID)
	if err != nil {
		return nil, err
	}
	if err := s.requireRole(ctx, conv.AccountID, callerID, service.RoleAnalyst); err != nil {
		return nil, err
	}

	resp := &api.ChatResponse{ConversationID: convID}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		userMsg := &models.ConversationMessage{
			ID:             uuid.NewString(),
			ConversationID: convID,
			Role:           "user",
			Content:        content,
		}
		if _, err := s.conversations.AppendMessage(ctx, userMsg); err != nil {
			return err
		}

		history, err := s.conversations.ListMessages(ctx, convID)
		if err != nil {
			return err
		}

		prompt := make([]llm.Message, 0, len(history)+1)
		prompt = append(prompt, llm.Message{Role: "system", Content: systemPrompt})
		for _, m := range history {
			prompt = append(prompt, llm.Message{Role: m.Role, Content: m.Content})
		}

		reply, err := s.model.Complete(ctx, prompt)
		if err != nil {
			return err
		}

		assistantMsg := &models.ConversationMessage{
			ID:             uuid.NewString(),
			ConversationID: convID,
			Role:           "assistant",
			Content:        reply,
		}
		msgID, err := s.conversations.AppendMessage(ctx, assistantMsg)
		if err != nil {
			return err
		}

		resp.Reply = api.MessageSchema{
			MessageID: msgID,
			Role:      "assistant",
			Content:   reply,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type briefPayload struct {
	Objective     string `json:"objective"`
	Audience      string `json:"audience"`
	MonthlyBudget string `json:"monthly_budget"`
	Channels      string `json:"channels"`
	Timeline      string `json:"timeline"`
	KeyMessages   string `json:"key_messages"`
}

// Generate runs the extraction prompt over the conversation and persists the
// structured brief the model returns.
func (s *BriefService) Generate(ctx context.Context, callerID, convID string) (*api.BriefSchema, error) {
	conv, err := s.conversations.GetById(ctx, convID)
	if err != nil {
		return nil, err
	}
	if err := s.requireRole(ctx, conv.AccountID, callerID, service.RoleAnalyst); err != nil {
		return nil, err
	}

	history, err := s.conversations.ListMessages(ctx, convID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrEmptyConversation
	}

	prompt := make([]llm.Message, 0, len(history)+2)
	prompt = append(prompt, llm.Message{Role: "system", Content: systemPrompt})
	for _, m := range history {
		prompt = append(prompt, llm.Message{Role: m.Role, Content: m.Content})
	}
	prompt = append(prompt, llm.Message{Role: "user", Content: extractionPrompt})

	reply, err := s.model.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := parseBrief(reply)
	if err != nil {
		return nil, err
	}

	brief := &models.Brief{
		ID:             uuid.NewString(),
		ConversationID: convID,
		AccountID:      conv.AccountID,
		Objective:      payload.Objective,
		Audience:       payload.Audience,
		MonthlyBudget:  payload.MonthlyBudget,
		Channels:       payload.Channels,
		Timeline:       payload.Timeline,
		KeyMessages:    payload.KeyMessages,
	}

	briefID, err := s.briefs.Create(ctx, brief)
	if err != nil {
		return nil, err
	}
	brief.ID = briefID

	return toBriefSchema(brief), nil
}

// CreateCampaign turns a stored brief into a draft campaign.
func (s *BriefService) CreateCampaign(ctx context.Context, callerID, briefID string) (*api.CampaignSchema, error) {
	brief, err := s.briefs.GetById(ctx, briefID)
	if err != nil {
		return nil, err
	}

	input := campaignsvc.CreateInput{
		AccountID: brief.AccountID,
		Name:      brief.Objective,
		Objective: brief.Objective,
		Channel:   normalizeChannel(brief.Channels),
	}
	if budget := parseBudget(brief.MonthlyBudget); budget != nil {
		input.MonthlyBudget = budget
	}
	if brief.Audience != "" {
		targeting := brief.Audience
		input.Targeting = &targeting
	}

	return s.campaigns.Create(ctx, callerID, input)
}

// parseBrief tolerates models that wrap JSON in markdown fences.
func parseBrief(reply string) (*briefPayload, error) {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload briefPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, ErrBriefParse
	}
	if payload.Objective == "" {
		return nil, ErrBriefParse
	}
	return &payload, nil
}

// normalizeChannel maps the model's free-form channel text ("Search, Display",
// "YouTube ads", ...) onto one of the channels campaigns accept. Campaigns
// carry a single channel, so matches are picked in a fixed priority with
// search as the fallback.
func normalizeChannel(raw string) string {
	c := strings.ToLower(raw)
	switch {
	case strings.Contains(c, "performance") || strings.Contains(c, "pmax"):
		return "performance_max"
	case strings.Contains(c, "search"):
		return "search"
	case strings.Contains(c, "shopping"):
		return "shopping"
	case strings.Contains(c, "video") || strings.Contains(c, "youtube"):
		return "video"
	case strings.Contains(c, "display"):
		return "display"
	default:
		return "search"
	}
}

func parseBudget(raw string) *decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return nil
	}
	budget, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &budget
}

func (s *BriefService) requireRole(ctx context.Context, accountID, userID, min string) error {
	role, err := s.roles.GetMemberRole(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if !service.RoleAtLeast(role, min) {
		return service.ErrForbidden
	}
	return nil
}

func toBriefSchema(b *models.Brief) *api.BriefSchema {
	return &api.BriefSchema{
		BriefID:        b.ID,
		ConversationID: b.ConversationID,
		AccountID:      b.AccountID,
		Objective:      b.Objective,
		Audience:       b.Audience,
		MonthlyBudget:  b.MonthlyBudget,
		Channels:       b.Channels,
		Timeline:       b.Timeline,
		KeyMessages:    b.KeyMessages,
	}
}
