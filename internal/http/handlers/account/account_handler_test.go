package account_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers/account"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers/mocks"
	mw "github.com/copp1723/lane-google-sub002/internal/http/middleware"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/copp1723/lane-google-sub002/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedRequest(method, target string, body []byte, userID string, params map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := mw.WithUserID(req.Context(), userID)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return req.WithContext(ctx)
}

func TestAccountHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(account.CreateAccountRequest{
		Name:             "Acme",
		GoogleCustomerID: "123-456-7890",
	})
	req := authedRequest(http.MethodPost, "/api/accounts", body, "u1", nil)
	w := httptest.NewRecorder()

	expected := &api.AccountSchema{
		AccountID:        "acc1",
		Name:             "Acme",
		GoogleCustomerID: "123-456-7890",
		AutoPauseEnabled: true,
	}
	mockService.On("Create", mock.Anything, "u1", "Acme", "123-456-7890").Return(expected, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.AccountResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "acc1", resp.Account.AccountID)
}

func TestAccountHandler_Create_Duplicate(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(account.CreateAccountRequest{
		Name:             "Acme",
		GoogleCustomerID: "123-456-7890",
	})
	req := authedRequest(http.MethodPost, "/api/accounts", body, "u1", nil)
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "u1", "Acme", "123-456-7890").
		Return(nil, repo.ErrAccountExists)

	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeAccountExists, resp.Error.Code)
}

func TestAccountHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(account.CreateAccountRequest{Name: "Acme"})
	req := authedRequest(http.MethodPost, "/api/accounts", body, "u1", nil)
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	req := authedRequest(http.MethodGet, "/api/accounts/ghost", nil, "u1",
		map[string]string{"accountId": "ghost"})
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, "u1", "ghost").Return(nil, repo.ErrNotFound)

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestAccountHandler_Get_Forbidden(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	req := authedRequest(http.MethodGet, "/api/accounts/acc1", nil, "stranger",
		map[string]string{"accountId": "acc1"})
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, "stranger", "acc1").Return(nil, service.ErrForbidden)

	h.Get(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
}

func TestAccountHandler_List_Success(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	req := authedRequest(http.MethodGet, "/api/accounts", nil, "u1", nil)
	w := httptest.NewRecorder()

	mockService.On("ListForUser", mock.Anything, "u1").Return([]api.AccountSchema{
		{AccountID: "acc1", Name: "Acme"},
	}, nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.AccountListResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Accounts, 1)
}

func TestAccountHandler_SetMember_InvalidRole(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(account.SetMemberRequest{UserID: "u2", Role: "superuser"})
	req := authedRequest(http.MethodPost, "/api/accounts/acc1/members", body, "u1",
		map[string]string{"accountId": "acc1"})
	w := httptest.NewRecorder()

	h.SetMember(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestAccountHandler_SetAutoPause_Success(t *testing.T) {
	mockService := mocks.NewMockAccountService(t)
	h := account.NewAccountHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(account.SetAutoPauseRequest{Enabled: false})
	req := authedRequest(http.MethodPost, "/api/accounts/acc1/auto-pause", body, "u1",
		map[string]string{"accountId": "acc1"})
	w := httptest.NewRecorder()

	mockService.On("SetAutoPause", mock.Anything, "u1", "acc1", false).Return(nil)

	h.SetAutoPause(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
