package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	engine := calculation.NewEngine()
	engine.Now = func() time.Time { return time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC) }

	h := NewHandler(engine, NewMetrics(), zerolog.Nop())
	srv := httptest.NewServer(NewRouter(h, opts))
	t.Cleanup(srv.Close)
	return srv
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.RateLimit = 0
	return opts
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestComputeContribution_Success(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := post(t, srv.URL+"/api/contribution",
		`{"salary": 130000, "ytd": 10000, "goal": 23500, "total_periods": 26, "remaining_periods": 20}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var plan domain.ContributionPlan
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.True(t, plan.RequiredPercent.Equal(decimal.NewFromFloat(13.5)))
	assert.True(t, plan.PerCheck.Equal(decimal.NewFromInt(675)))
	assert.True(t, plan.RemainingGrossPay.Equal(decimal.NewFromInt(100000)))
}

func TestComputeContribution_DomainError(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := post(t, srv.URL+"/api/contribution",
		`{"salary": 130000, "ytd": 10000, "goal": 23500, "total_periods": 0, "remaining_periods": 20}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Contains(t, errResp.Error, "total pay periods must be positive")
}

func TestComputeContribution_BadBody(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, _ := post(t, srv.URL+"/api/contribution", `{"salary": "lots"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, srv.URL+"/api/contribution", `{"salary": 1, "bonus": 2}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown fields are rejected")
}

func TestComputeScenario(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := post(t, srv.URL+"/api/scenario",
		`{"adjusted_rate": "10", "remaining_gross_pay": 100000, "ytd": 10000, "goal": 23500}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var s domain.ScenarioProjection
	require.NoError(t, json.Unmarshal(body, &s))
	assert.True(t, s.TotalYearEnd.Equal(decimal.NewFromInt(20000)))
	assert.True(t, s.Diff.Equal(decimal.NewFromInt(-3500)))
}

func TestEstimatePeriods(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := get(t, srv.URL+"/api/periods?date=2026-07-01T00:00:00Z&total_periods=12")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var est domain.PeriodEstimate
	require.NoError(t, json.Unmarshal(body, &est))
	assert.Equal(t, 6, est.Remaining)

	// defaults: engine clock (Dec 1) and biweekly
	resp, body = get(t, srv.URL+"/api/periods")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &est))
	assert.Equal(t, 2, est.Remaining)

	resp, _ = get(t, srv.URL+"/api/periods?total_periods=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/api/periods?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlan_FromBody(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := post(t, srv.URL+"/api/plan",
		`{"name": "alex", "salary": 130000, "ytd": 20000, "age_bracket": "under_50", "what_if_rates": [10, 50]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var report domain.PlanReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "alex", report.ProfileName)
	assert.Equal(t, 26, report.TotalPeriods, "default pay schedule applied")
	assert.Equal(t, 2, report.RemainingPeriods)
	assert.True(t, report.PeriodsEstimated)
	assert.True(t, report.Plan.RequiredPercent.Equal(decimal.NewFromInt(45)))
	require.Len(t, report.Scenarios, 2)
}

func TestPlan_InvalidProfile(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := post(t, srv.URL+"/api/plan", `{"salary": -1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "salary cannot be negative")
}

func TestSharedPlan(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := get(t, srv.URL+"/api/plan?salary=130000&ytd=10000&goal=23500&periods=26&remaining=20&rates=10")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var report domain.PlanReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, domain.GoalFromCustom, report.GoalSource)
	assert.True(t, report.Plan.PerCheck.Equal(decimal.NewFromInt(675)))

	resp, body = get(t, srv.URL+"/api/plan?salary=130000&ytd=10000&goal=23500&remaining=20&format=console")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, string(body), "Per Paycheck:         $675.00")

	resp, _ = get(t, srv.URL+"/api/plan?salary=1&format=pdf")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLimits(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, body := get(t, srv.URL+"/api/limits?year=2025")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var limits LimitsResponse
	require.NoError(t, json.Unmarshal(body, &limits))
	assert.True(t, limits.Exact)
	assert.True(t, limits.Goals[domain.Bracket60To63].Equal(decimal.NewFromInt(34750)))
	assert.Equal(t, []int{2025, 2026}, limits.KnownYears)

	resp, body = get(t, srv.URL+"/api/limits")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &limits))
	assert.Equal(t, 2026, limits.Year)

	resp, _ = get(t, srv.URL+"/api/limits?year=soon")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, testOptions())

	resp, _ := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	post(t, srv.URL+"/api/scenario", `{"adjusted_rate": 5, "remaining_gross_pay": 1000, "ytd": 0, "goal": 100}`)

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `contrib_calculations_total{operation="scenario"} 1`)
	assert.Contains(t, string(body), `contrib_http_requests_total{code="200",method="POST",route="/api/scenario"} 1`)
}

func TestRateLimit(t *testing.T) {
	opts := testOptions()
	opts.RateLimit = 0.001
	opts.RateBurst = 1
	srv := newTestServer(t, opts)

	resp, _ := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}
