package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mntax-dev/mntax/internal/config"
	"github.com/mntax-dev/mntax/internal/schedule"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode

	return New(cfg, schedule.Default()).Router()
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(newTestRouter(), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestBasicTax(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		status string
		income string
		want   basicTaxResponse
	}{
		{
			name:   "single mid bracket",
			status: "single",
			income: "50000",
			want:   basicTaxResponse{FilingStatus: "single", Income: "50000.00", BasicTax: "3105.44"},
		},
		{
			name:   "separately at inclusive upper bound",
			status: "married_filing_separately",
			income: "71680",
			want:   basicTaxResponse{FilingStatus: "married filing separately", Income: "71680.00", BasicTax: "4476.76"},
		},
		{
			name:   "jointly with shouting double-L spelling",
			status: "MARRIED FILLING JOINTLY",
			income: "100000",
			want:   basicTaxResponse{FilingStatus: "married filing jointly", Income: "100000.00", BasicTax: "6436.64"},
		},
		{
			name:   "head of household at zero income",
			status: "head of household",
			income: "0",
			want:   basicTaxResponse{FilingStatus: "head of household", Income: "0.00", BasicTax: "0.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, fmt.Sprintf("/v1/basic-tax?status=%s&income=%s", url.QueryEscape(tt.status), tt.income))

			require.Equal(t, http.StatusOK, w.Code)

			var resp basicTaxResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestBasicTax_MissingParams(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/v1/basic-tax",
		"/v1/basic-tax?status=single",
		"/v1/basic-tax?income=50000",
	} {
		w := get(router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "required", path)
	}
}

func TestBasicTax_BadIncome(t *testing.T) {
	w := get(newTestRouter(), "/v1/basic-tax?status=single&income=lots")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid income")
}

func TestBasicTax_UnknownStatus(t *testing.T) {
	w := get(newTestRouter(), "/v1/basic-tax?status=widowed&income=50000")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown filing status")
}

func TestBasicTax_NegativeIncomeIsZeroTax(t *testing.T) {
	w := get(newTestRouter(), "/v1/basic-tax?status=single&income=-5000")

	require.Equal(t, http.StatusOK, w.Code)

	var resp basicTaxResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0.00", resp.BasicTax)
}

func TestSchedule(t *testing.T) {
	w := get(newTestRouter(), "/v1/schedule")

	require.Equal(t, http.StatusOK, w.Code)

	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Statuses, 4)

	assert.Equal(t, "married filing jointly", resp.Statuses[0].FilingStatus)
	assert.Equal(t, "married filing separately", resp.Statuses[1].FilingStatus)
	assert.Equal(t, "single", resp.Statuses[2].FilingStatus)
	assert.Equal(t, "head of household", resp.Statuses[3].FilingStatus)

	for _, group := range resp.Statuses {
		require.Len(t, group.Brackets, 5, group.FilingStatus)
		assert.Equal(t, "0", group.Brackets[0].LowerBound, group.FilingStatus)
		assert.Equal(t, "-1", group.Brackets[4].UpperBound, group.FilingStatus)
	}

	first := resp.Statuses[0].Brackets[0]
	assert.Equal(t, bracketResponse{LowerBound: "0", UpperBound: "36080", BaseTax: "0.00", Rate: "0.0535"}, first)
}

func TestScheduleForStatus(t *testing.T) {
	w := get(newTestRouter(), "/v1/schedule/married_filing_separately")

	require.Equal(t, http.StatusOK, w.Code)

	var resp statusBracketsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "married filing separately", resp.FilingStatus)
	require.Len(t, resp.Brackets, 5)
	assert.Equal(t, bracketResponse{LowerBound: "18040", UpperBound: "71680", BaseTax: "695.14", Rate: "0.0705"}, resp.Brackets[1])
}

func TestScheduleForStatus_EncodedSpaces(t *testing.T) {
	w := get(newTestRouter(), "/v1/schedule/married%20filing%20jointly")

	require.Equal(t, http.StatusOK, w.Code)

	var resp statusBracketsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "married filing jointly", resp.FilingStatus)
	assert.Len(t, resp.Brackets, 5)
}

func TestScheduleForStatus_Unknown(t *testing.T) {
	w := get(newTestRouter(), "/v1/schedule/widowed")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown filing status")
}

func TestRequestID_Generated(t *testing.T) {
	w := get(newTestRouter(), "/health")

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_Echoed(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "trace-me-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-me-123", w.Header().Get(RequestIDHeader))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
