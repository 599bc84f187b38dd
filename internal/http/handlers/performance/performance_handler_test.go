package performance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers/mocks"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers/performance"
	mw "github.com/copp1723/lane-google-sub002/internal/http/middleware"
	"github.com/copp1723/lane-google-sub002/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func summaryRequest(userID, customerID, query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/performance/summary/"+customerID+query, nil)

	ctx := mw.WithUserID(req.Context(), userID)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("customerId", customerID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return req.WithContext(ctx)
}

func TestPerformanceHandler_Summary_Success(t *testing.T) {
	mockService := mocks.NewMockPerformanceService(t)
	h := performance.NewPerformanceHandler(handlers.NewLogger(), mockService)

	expected := &api.PerformanceSummaryResponse{
		AccountID: "acc1",
		Days:      7,
		Totals: api.PerformanceTotals{
			Spend:          "150.00",
			Impressions:    15000,
			Clicks:         300,
			Conversions:    30,
			CTR:            0.02,
			CPC:            "0.50",
			CPA:            "5.00",
			ConversionRate: 0.1,
		},
		GeneratedAt: time.Now().UTC(),
	}
	mockService.On("Summary", mock.Anything, "u1", "acc1", 7).Return(expected, nil)

	req := summaryRequest("u1", "acc1", "?days=7")
	w := httptest.NewRecorder()

	h.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.PerformanceSummaryResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 7, resp.Days)
	assert.Equal(t, "0.50", resp.Totals.CPC)
}

func TestPerformanceHandler_Summary_DefaultDays(t *testing.T) {
	mockService := mocks.NewMockPerformanceService(t)
	h := performance.NewPerformanceHandler(handlers.NewLogger(), mockService)

	// no days param: the handler passes 0 and the service clamps
	mockService.On("Summary", mock.Anything, "u1", "acc1", 0).
		Return(&api.PerformanceSummaryResponse{AccountID: "acc1", Days: 30}, nil)

	req := summaryRequest("u1", "acc1", "")
	w := httptest.NewRecorder()

	h.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPerformanceHandler_Summary_Forbidden(t *testing.T) {
	mockService := mocks.NewMockPerformanceService(t)
	h := performance.NewPerformanceHandler(handlers.NewLogger(), mockService)

	mockService.On("Summary", mock.Anything, "u1", "acc1", 0).Return(nil, service.ErrForbidden)

	req := summaryRequest("u1", "acc1", "")
	w := httptest.NewRecorder()

	h.Summary(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
}
