package account

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
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type accountService interface {
	Create(ctx context.Context, callerID, name, customerID string) (*api.AccountSchema, error)
	Get(ctx context.Context, callerID, accountID string) (*api.AccountSchema, error)
	ListForUser(ctx context.Context, callerID string) ([]api.AccountSchema, error)
	SetMemberRole(ctx context.Context, callerID, accountID, userID, role string) (*api.AccountMember, error)
	SetAutoPause(ctx context.Context, callerID, accountID string, enabled bool) error
}

type AccountHandler struct {
	log     *slog.Logger
	service accountService
}

func NewAccountHandler(log *slog.Logger, s accountService) *AccountHandler {
	return &AccountHandler{
		log:     log,
		service: s,
	}
}

type CreateAccountRequest struct {
	Name             string `json:"name"               validate:"required,max=255"`
	GoogleCustomerID string `json:"google_customer_id" validate:"required,max=32"`
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateAccountRequest

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

	resp, err := h.service.Create(ctx, mw.UserID(ctx), input.Name, input.GoogleCustomerID)
	if err != nil {
		if errors.Is(err, repo.ErrAccountExists) {
			log.Info("account already exists", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeAccountExists, err.Error()))
			return
		}
		log.Error("error while creating account", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("account created")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.AccountResponse{Account: *resp})
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "accountId is required"))
		return
	}

	resp, err := h.service.Get(ctx, mw.UserID(ctx), accountID)
	if err != nil {
		writeServiceError(w, r, log, err, "error while retrieving account")
		return
	}

	log.Info("account retrieved")
	render.JSON(w, r, api.AccountResponse{Account: *resp})
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.ListForUser(ctx, mw.UserID(ctx))
	if err != nil {
		log.Error("error while listing accounts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("accounts listed")
	render.JSON(w, r, api.AccountListResponse{Accounts: resp})
}

type SetMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role"    validate:"required,oneof=owner admin manager analyst viewer"`
}

func (h *AccountHandler) SetMember(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.SetMember"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "accountId is required"))
		return
	}

	var input SetMemberRequest

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

	resp, err := h.service.SetMemberRole(ctx, mw.UserID(ctx), accountID, input.UserID, input.Role)
	if err != nil {
		writeServiceError(w, r, log, err, "error while setting member role")
		return
	}

	log.Info("member role set")
	render.JSON(w, r, map[string]any{"member": resp})
}

type SetAutoPauseRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *AccountHandler) SetAutoPause(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.SetAutoPause"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "accountId is required"))
		return
	}

	var input SetAutoPauseRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := h.service.SetAutoPause(ctx, mw.UserID(ctx), accountID, input.Enabled); err != nil {
		writeServiceError(w, r, log, err, "error while updating auto-pause")
		return
	}

	log.Info("auto-pause updated")
	render.JSON(w, r, map[string]bool{"enabled": input.Enabled})
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
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
