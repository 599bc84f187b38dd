package campaign

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	mw "github.com/copp1723/lane-google-sub002/internal/http/middleware"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/copp1723/lane-google-sub002/internal/service"
	campaignsvc "github.com/copp1723/lane-google-sub002/internal/service/campaign"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type campaignService interface {
	Create(ctx context.Context, callerID string, input campaignsvc.CreateInput) (*api.CampaignSchema, error)
	Get(ctx context.Context, callerID, campaignID string) (*api.CampaignSchema, error)
	List(ctx context.Context, callerID, accountID string, limit, offset int) ([]api.CampaignSchema, error)
	Update(ctx context.Context, callerID, campaignID string, input campaignsvc.UpdateInput) (*api.CampaignSchema, error)
	Delete(ctx context.Context, callerID, campaignID string) error
	Transition(ctx context.Context, callerID, campaignID, action string) (*api.CampaignSchema, error)
}

type CampaignHandler struct {
	log     *slog.Logger
	service campaignService
}

func NewCampaignHandler(log *slog.Logger, s campaignService) *CampaignHandler {
	return &CampaignHandler{
		log:     log,
		service: s,
	}
}

type CampaignRequest struct {
	AccountID     string  `json:"account_id"     validate:"required"`
	Name          string  `json:"name"           validate:"required,max=255"`
	Objective     string  `json:"objective"      validate:"required,max=255"`
	Channel       string  `json:"channel"        validate:"required,oneof=search display video shopping performance_max"`
	DailyBudget   *string `json:"daily_budget"`
	MonthlyBudget *string `json:"monthly_budget"`
	Targeting     *string `json:"targeting"`
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CampaignRequest

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

	daily, monthly, err := parseBudgets(input.DailyBudget, input.MonthlyBudget)
	if err != nil {
		log.Error("invalid budget", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
		return
	}

	resp, err := h.service.Create(ctx, mw.UserID(ctx), campaignsvc.CreateInput{
		AccountID:     input.AccountID,
		Name:          input.Name,
		Objective:     input.Objective,
		Channel:       input.Channel,
		DailyBudget:   daily,
		MonthlyBudget: monthly,
		Targeting:     input.Targeting,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while creating campaign")
		return
	}

	log.Info("campaign created", slog.String("campaign_id", resp.CampaignID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CampaignResponse{Campaign: *resp})
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	campaignID := chi.URLParam(r, "campaignId")
	if campaignID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "campaignId is required"))
		return
	}

	resp, err := h.service.Get(ctx, mw.UserID(ctx), campaignID)
	if err != nil {
		writeServiceError(w, r, log, err, "error while retrieving campaign")
		return
	}

	log.Info("campaign retrieved")
	render.JSON(w, r, api.CampaignResponse{Campaign: *resp})
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "account_id is required"))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	resp, err := h.service.List(ctx, mw.UserID(ctx), accountID, limit, offset)
	if err != nil {
		writeServiceError(w, r, log, err, "error while listing campaigns")
		return
	}

	log.Info("campaigns listed", slog.Int("count", len(resp)))
	render.JSON(w, r, api.CampaignListResponse{
		Campaigns: resp,
		Limit:     limit,
		Offset:    offset,
	})
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	campaignID := chi.URLParam(r, "campaignId")
	if campaignID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "campaignId is required"))
		return
	}

	var input CampaignRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	// account_id is immutable; skip its required tag on update.
	if err := validator.New().StructExcept(input, "AccountID"); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	daily, monthly, err := parseBudgets(input.DailyBudget, input.MonthlyBudget)
	if err != nil {
		log.Error("invalid budget", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
		return
	}

	resp, err := h.service.Update(ctx, mw.UserID(ctx), campaignID, campaignsvc.UpdateInput{
		Name:          input.Name,
		Objective:     input.Objective,
		Channel:       input.Channel,
		DailyBudget:   daily,
		MonthlyBudget: monthly,
		Targeting:     input.Targeting,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while updating campaign")
		return
	}

	log.Info("campaign updated")
	render.JSON(w, r, api.CampaignResponse{Campaign: *resp})
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	campaignID := chi.URLParam(r, "campaignId")
	if campaignID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "campaignId is required"))
		return
	}

	if err := h.service.Delete(ctx, mw.UserID(ctx), campaignID); err != nil {
		writeServiceError(w, r, log, err, "error while deleting campaign")
		return
	}

	log.Info("campaign deleted")
	w.WriteHeader(http.StatusNoContent)
}

type TransitionRequest struct {
	Action string `json:"action" validate:"required,oneof=submit approve reject revise launch pause resume complete"`
}

func (h *CampaignHandler) Transition(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.Transition"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	campaignID := chi.URLParam(r, "campaignId")
	if campaignID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "campaignId is required"))
		return
	}

	var input TransitionRequest

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

	resp, err := h.service.Transition(ctx, mw.UserID(ctx), campaignID, input.Action)
	if err != nil {
		writeServiceError(w, r, log, err, "error while transitioning campaign")
		return
	}

	log.Info("campaign transitioned", slog.String("action", input.Action), slog.String("status", resp.Status))
	render.JSON(w, r, api.CampaignResponse{Campaign: *resp})
}

func parseBudgets(daily, monthly *string) (*decimal.Decimal, *decimal.Decimal, error) {
	var d, m *decimal.Decimal
	if daily != nil {
		v, err := decimal.NewFromString(*daily)
		if err != nil {
			return nil, nil, errors.New("daily_budget must be a decimal amount")
		}
		d = &v
	}
	if monthly != nil {
		v, err := decimal.NewFromString(*monthly)
		if err != nil {
			return nil, nil, errors.New("monthly_budget must be a decimal amount")
		}
		m = &v
	}
	return d, m, nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		log.Info("campaign not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	case errors.Is(err, service.ErrForbidden):
		log.Info("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
	case errors.Is(err, campaignsvc.ErrInvalidTransition), errors.Is(err, campaignsvc.ErrUnknownAction):
		log.Info("invalid transition", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeBadTransition, err.Error()))
	case errors.Is(err, campaignsvc.ErrNotDraft):
		log.Info("campaign not editable", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeNotDraft, err.Error()))
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
