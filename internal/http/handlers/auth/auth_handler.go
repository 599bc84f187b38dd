package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	authsvc "github.com/copp1723/lane-google-sub002/internal/service/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type authService interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, email, name, password string) (*api.UserSchema, error)
}

type AuthHandler struct {
	log     *slog.Logger
	service authService
}

func NewAuthHandler(log *slog.Logger, s authService) *AuthHandler {
	return &AuthHandler{
		log:     log,
		service: s,
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input LoginRequest

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

	resp, err := h.service.Login(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrBadCredentials) || errors.Is(err, authsvc.ErrInactiveUser) {
			log.Info("login rejected", sl.Err(err))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeBadCredentials, "invalid email or password"))
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user logged in")
	render.JSON(w, r, resp)
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input RegisterRequest

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

	resp, err := h.service.Register(ctx, input.Email, input.Name, input.Password)
	if err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			log.Info("email already registered", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeEmailExists, err.Error()))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user registered")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{"user": resp})
}
