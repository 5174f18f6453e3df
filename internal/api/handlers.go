package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/rgehrsitz/contribgo/internal/config"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/rgehrsitz/contribgo/internal/output"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Handler holds the dependencies of the HTTP handlers
type Handler struct {
	Engine  *calculation.Engine
	Parser  *config.InputParser
	Metrics *Metrics
	Log     zerolog.Logger
}

// NewHandler creates a handler around engine
func NewHandler(engine *calculation.Engine, metrics *Metrics, log zerolog.Logger) *Handler {
	return &Handler{
		Engine:  engine,
		Parser:  config.NewInputParser(),
		Metrics: metrics,
		Log:     log,
	}
}

// ComputeContribution handles POST /api/contribution
func (h *Handler) ComputeContribution(w http.ResponseWriter, r *http.Request) {
	var req ContributionRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := calculation.ComputeContribution(req.Salary, req.YTD, req.Goal, req.TotalPeriods, req.RemainingPeriods)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.Metrics.observeCalculation("contribution")
	writeJSON(w, http.StatusOK, plan)
}

// ComputeScenario handles POST /api/scenario
func (h *Handler) ComputeScenario(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	if !h.decode(w, r, &req) {
		return
	}

	projection := calculation.ComputeScenario(req.AdjustedRate, req.RemainingGrossPay, req.YTD, req.Goal)
	h.Metrics.observeCalculation("scenario")
	writeJSON(w, http.StatusOK, projection)
}

// EstimatePeriods handles GET /api/periods?date=2026-12-01&total_periods=26
func (h *Handler) EstimatePeriods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	now := h.now()
	if raw := q.Get("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date", err)
			return
		}
		now = parsed
	}

	totalPeriods := domain.DefaultPayPeriods
	if raw := q.Get("total_periods"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid total_periods", err)
			return
		}
		totalPeriods = n
	}

	est, err := calculation.EstimatePeriods(now, totalPeriods)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.Metrics.observeCalculation("periods")
	writeJSON(w, http.StatusOK, est)
}

// Plan handles POST /api/plan with a profile body
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if !h.decode(w, r, &profile) {
		return
	}
	h.plan(w, r, &profile)
}

// SharedPlan handles GET /api/plan with share link query parameters
func (h *Handler) SharedPlan(w http.ResponseWriter, r *http.Request) {
	h.plan(w, r, output.ProfileFromQuery(r.URL.Query()))
}

func (h *Handler) plan(w http.ResponseWriter, r *http.Request, profile *domain.Profile) {
	config.ApplyDefaults(profile)
	if err := h.Parser.ValidateProfile(profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile", err)
		return
	}

	report, err := h.Engine.Plan(r.Context(), profile)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.Metrics.observeCalculation("plan")

	if format := r.URL.Query().Get("format"); format != "" && format != "json" {
		h.writeFormatted(w, report, format)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) writeFormatted(w http.ResponseWriter, report *domain.PlanReport, format string) {
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, "unsupported format", fmt.Errorf("available: %s", strings.Join(output.FormatterNames(), ", ")))
		return
	}
	data, err := f.Format(report)
	if err != nil {
		h.fail(w, err)
		return
	}
	switch f.Name() {
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Limits handles GET /api/limits?year=2026
func (h *Handler) Limits(w http.ResponseWriter, r *http.Request) {
	year := h.now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year", err)
			return
		}
		year = n
	}

	table := h.Engine.Limits
	yl, exact, err := table.ForYear(year)
	if err != nil {
		h.fail(w, err)
		return
	}

	goals := make(map[domain.AgeBracket]decimal.Decimal, len(domain.AllBrackets))
	for _, b := range domain.AllBrackets {
		goal, err := yl.Goal(b)
		if err != nil {
			h.fail(w, err)
			return
		}
		goals[b] = goal
	}

	writeJSON(w, http.StatusOK, LimitsResponse{
		Year:       year,
		Exact:      exact,
		Limits:     yl,
		Goals:      goals,
		KnownYears: table.Years(),
	})
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) now() time.Time {
	if h.Engine != nil && h.Engine.Now != nil {
		return h.Engine.Now()
	}
	return time.Now()
}

// decode reads a JSON body into v, writing a 400 on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	return true
}

// fail maps calculation errors to status codes
func (h *Handler) fail(w http.ResponseWriter, err error) {
	var de *calculation.DomainError
	if errors.As(err, &de) {
		writeError(w, http.StatusBadRequest, de.Message, nil)
		return
	}
	h.Log.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal error", nil)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
