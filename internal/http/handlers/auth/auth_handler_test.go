package auth_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers/auth"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers/mocks"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	authsvc "github.com/copp1723/lane-google-sub002/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Login

func TestAuthHandler_Login_Success(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.LoginResponse{
		Token: "jwt-token",
		User:  api.UserSchema{UserID: "u1", Email: "alice@example.com", Name: "Alice", IsActive: true},
	}
	mockService.On("Login", mock.Anything, "alice@example.com", "hunter2").Return(expected, nil)

	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.LoginResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "u1", resp.User.UserID)
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.LoginRequest{Email: "not-an-email", Password: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(nil, authsvc.ErrBadCredentials)

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeBadCredentials, resp.Error.Code)
}

func TestAuthHandler_Login_ServiceError(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.LoginRequest{Email: "alice@example.com", Password: "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, "alice@example.com", "hunter2").
		Return(nil, errors.New("db down"))

	h.Login(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Register

func TestAuthHandler_Register_Success(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.RegisterRequest{
		Email:    "carol@example.com",
		Name:     "Carol",
		Password: "s3cret99",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.UserSchema{UserID: "u3", Email: "carol@example.com", Name: "Carol", IsActive: true}
	mockService.On("Register", mock.Anything, "carol@example.com", "Carol", "s3cret99").
		Return(expected, nil)

	h.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.RegisterRequest{
		Email:    "dup@example.com",
		Name:     "Dup",
		Password: "s3cret99",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, "dup@example.com", "Dup", "s3cret99").
		Return(nil, repo.ErrEmailExists)

	h.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeEmailExists, resp.Error.Code)
}
