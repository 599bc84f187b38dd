package pacing

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
)

type pacingService interface {
	Summary(ctx context.Context, callerID, accountID string) (*api.PacingSummaryResponse, error)
}

type PacingHandler struct {
	log     *slog.Logger
	service pacingService
}

func NewPacingHandler(log *slog.Logger, s pacingService) *PacingHandler {
	return &PacingHandler{
		log:     log,
		service: s,
	}
}

func (h *PacingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pacing.Summary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	accountID := chi.URLParam(r, "customerId")
	if accountID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "customerId is required"))
		return
	}

	resp, err := h.service.Summary(ctx, mw.UserID(ctx), accountID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("account not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, service.ErrForbidden):
			log.Info("forbidden", sl.Err(err))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
		default:
			log.Error("error while building pacing summary", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("pacing summary built", slog.Int("campaigns", len(resp.Campaigns)))
	render.JSON(w, r, resp)
}
