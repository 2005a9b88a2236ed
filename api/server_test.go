package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"webdev-cost/core/catalog"
	"webdev-cost/core/discount"
	"webdev-cost/core/report"
)

type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, r *report.Report) ([]byte, error) {
	return []byte("%PDF-1.3 " + r.TotalLine()), nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(Options{
		Version:  "test",
		Report:   report.DefaultOptions(),
		Renderer: stubRenderer{},
		Logger:   zaptest.NewLogger(t),
	})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestEstimateDefaults(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/estimate", `{"site_type": "dynamic"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp EstimateResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "Estimated Price: ₱34,000", resp.Headline)
	assert.True(t, resp.Estimate.Total.Equal(decimal.NewFromInt(34000)))
	assert.Len(t, resp.Estimate.Breakdown, 9)
	assert.Len(t, resp.Chart.Slices, 9)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Discount)
}

func TestEstimateForeignWithDiscount(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/estimate",
		`{"site_type": "dynamic", "client_type": "foreign", "discount": "student"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp EstimateResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Estimate.Subtotal.Equal(decimal.NewFromInt(34000)))
	assert.True(t, resp.Estimate.Total.Equal(decimal.NewFromInt(68000)))
	require.NotNil(t, resp.Discount)
	assert.Equal(t, discount.Student, resp.Discount.Applied)
	assert.True(t, resp.Discount.FinalPrice.Equal(decimal.NewFromInt(61200)))
}

func TestEstimateInvalidInputShowsPlaceholder(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"unknown site type", `{"site_type": "ecommerce"}`},
		{"missing site type", `{}`},
		{"zero pages", `{"site_type": "static", "pages": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/estimate", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp EstimateResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, "Waiting for input...", resp.Placeholder)
			assert.Equal(t, "Estimated Price: ₱0", resp.Headline)
			assert.True(t, resp.Estimate.Total.IsZero())
			assert.Empty(t, resp.Chart.Slices)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
		})
	}
}

func TestEstimateBadRequests(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/estimate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/estimate", `{"site_type": "static", "discount": "vip"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Error ErrorBody `json:"error"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	assert.Contains(t, body.Error.Message, `unknown discount "vip"`)
}

func TestDiscount(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/discount",
		`{"base_price": 10000, "flags": {"referral": true, "student": true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp DiscountResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, discount.Referral, resp.Result.Applied)
	assert.True(t, resp.Result.FinalPrice.Equal(decimal.NewFromInt(9500)))
	assert.Equal(t, "Final Price: ₱9,500", resp.Headline)
	assert.Len(t, resp.Result.Lines, 3)

	rec = do(t, s, http.MethodPost, "/discount", `{"base_price": "20000", "discount": "plan-a"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = DiscountResponse{}
	decodeBody(t, rec, &resp)
	assert.Equal(t, discount.PlanA, resp.Result.Applied)
	assert.True(t, resp.Result.FinalPrice.Equal(decimal.NewFromInt(18000)))
}

func TestDiscountInvalidPrice(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/discount", `{"base_price": 0, "discount": "student"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp DiscountResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, discount.MessageInvalidPrice, resp.Result.Message)
	assert.True(t, resp.Result.FinalPrice.IsZero())
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_PRICE", resp.Error.Code)
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		Currency string                 `json:"currency"`
		Tables   []catalog.TableSummary `json:"tables"`
	}
	decodeBody(t, rec, &all)
	assert.Equal(t, "PHP", all.Currency)
	require.Len(t, all.Tables, 2)
	assert.Equal(t, "dynamic", string(all.Tables[0].SiteType))

	rec = do(t, s, http.MethodGet, "/catalog/static", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var table catalog.TableSummary
	decodeBody(t, rec, &table)
	assert.Len(t, table.Rows, 4)
	assert.Equal(t, "Frontend Development", table.Rows[0].Component)

	rec = do(t, s, http.MethodGet, "/catalog/ecommerce", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReport(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/report", `{"site_type": "dynamic", "client_type": "foreign"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Website_Estimate.pdf")
	assert.NotEmpty(t, rec.Header().Get("X-Report-Id"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
	assert.Contains(t, rec.Body.String(), "68,000 php")

	rec = do(t, s, http.MethodPost, "/report", `{"site_type": "unknown"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReportNotConfigured(t *testing.T) {
	s := NewServer(Options{Version: "test"})
	rec := do(t, s, http.MethodPost, "/report", `{"site_type": "static"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthVersionAndRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	decodeBody(t, rec, &health)
	assert.Equal(t, "healthy", health["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
	var version map[string]string
	decodeBody(t, rec, &version)
	assert.Equal(t, "test", version["version"])
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/estimate", `{"site_type": "static"}`)
	do(t, s, http.MethodPost, "/estimate", `{"site_type": "bogus"}`)
	do(t, s, http.MethodPost, "/discount", `{"base_price": 100, "discount": "referral"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `webdev_cost_estimates_total{client_type="local",outcome="ok",site_type="static"} 1`)
	assert.Contains(t, body, `webdev_cost_estimates_total{client_type="local",outcome="error",site_type="unknown"} 1`)
	assert.Contains(t, body, `webdev_cost_discounts_total{discount="referral"} 1`)
	assert.Contains(t, body, `webdev_cost_http_requests_total{code="200",method="POST",route="/estimate"} 1`)
}
