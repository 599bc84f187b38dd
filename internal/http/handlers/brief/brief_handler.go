package brief

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	mw "github.com/copp1723/lane-google-sub002/internal/http/middleware"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/copp1723/lane-google-sub002/internal/service"
	briefsvc "github.com/copp1723/lane-google-sub002/internal/service/brief"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type briefService interface {
	StartConversation(ctx context.Context, callerID, accountID, title string) (*api.ConversationSchema, error)
	Chat(ctx context.Context, callerID, convID, content string) (*api.ChatResponse, error)
	Generate(ctx context.Context, callerID, convID string) (*api.BriefSchema, error)
	CreateCampaign(ctx context.Context, callerID, briefID string) (*api.CampaignSchema, error)
}

type BriefHandler struct {
	log     *slog.Logger
	service briefService
}

func NewBriefHandler(log *slog.Logger, s briefService) *BriefHandler {
	return &BriefHandler{
		log:     log,
		service: s,
	}
}

type StartConversationRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Title     string `json:"title"      validate:"required,max=255"`
}

func (h *BriefHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.brief.StartConversation"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input StartConversationRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.StartConversation(ctx, mw.UserID(ctx), input.AccountID, input.Title)
	if err != nil {
		writeServiceError(w, r, log, err, "error while starting conversation")
		return
	}

	log.Info("conversation started", slog.String("conversation_id", resp.ConversationID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ConversationResponse{Conversation: *resp})
}

type ChatRequest struct {
	Content string `json:"content" validate:"required,max=8192"`
}

func (h *BriefHandler) Chat(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.brief.Chat"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	convID := chi.URLParam(r, "conversationId")
	if convID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "conversationId is required"))
		return
	}

	var input ChatRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Chat(ctx, mw.UserID(ctx), convID, input.Content)
	if err != nil {
		writeServiceError(w, r, log, err, "error while chatting")
		return
	}

	log.Info("chat reply produced")
	render.JSON(w, r, resp)
}

func (h *BriefHandler) Generate(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.brief.Generate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	convID := chi.URLParam(r, "conversationId")
	if convID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "conversationId is required"))
		return
	}

	resp, err := h.service.Generate(ctx, mw.UserID(ctx), convID)
	if err != nil {
		writeServiceError(w, r, log, err, "error while generating brief")
		return
	}

	log.Info("brief generated", slog.String("brief_id", resp.BriefID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.BriefResponse{Brief: *resp})
}

func (h *BriefHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.brief.CreateCampaign"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	briefID := chi.URLParam(r, "briefId")
	if briefID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "briefId is required"))
		return
	}

	resp, err := h.service.CreateCampaign(ctx, mw.UserID(ctx), briefID)
	if err != nil {
		writeServiceError(w, r, log, err, "error while creating campaign from brief")
		return
	}

	log.Info("campaign created from brief", slog.String("campaign_id", resp.CampaignID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CampaignResponse{Campaign: *resp})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		log.Info("resource not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	case errors.Is(err, service.ErrForbidden):
		log.Info("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
	case errors.Is(err, briefsvc.ErrEmptyConversation):
		log.Info("conversation empty", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeEmptyChat, err.Error()))
	case errors.Is(err, briefsvc.ErrBriefParse):
		log.Error("brief parse failed", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, api.Error(api.ErrCodeBriefParse, err.Error()))
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
