package rangecalc

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dayspan/internal/domain/daterange"
	"dayspan/internal/domain/report"
	"dayspan/internal/transport/http/api"
	"dayspan/internal/transport/http/middleware"
	"dayspan/internal/transport/http/shared"
)

type Handler struct {
	Calc                daterange.Calculator
	IncludeStartDefault bool
}

func NewHandler(includeStartDefault bool) *Handler {
	return &Handler{IncludeStartDefault: includeStartDefault}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/range", func(r chi.Router) {
		r.Get("/days", h.handleDayCount)
		r.Get("/end", h.handleEndDate)
		r.Get("/start", h.handleStartDate)
		r.Get("/export", h.handleExport)
	})
}

type dayCountResponse struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	IncludeStart bool   `json:"includeStart"`
	Days         int    `json:"days"`
}

func (h *Handler) handleDayCount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	v := shared.NewValidator()
	start, _ := v.Date("start", query.Get("start"))
	end, _ := v.Date("end", query.Get("end"))
	includeStart := v.Bool("includeStart", query.Get("includeStart"), h.IncludeStartDefault)
	if v.Reject(w, requestID) {
		return
	}

	days, err := h.Calc.DayCount(start, end, includeStart)
	if err != nil {
		failDomain(w, err, requestID)
		return
	}

	api.Success(w, dayCountResponse{
		Start:        shared.FormatDate(start),
		End:          shared.FormatDate(end),
		IncludeStart: includeStart,
		Days:         days,
	}, requestID)
}

type endDateResponse struct {
	Start        string `json:"start"`
	Days         int    `json:"days"`
	IncludeStart bool   `json:"includeStart"`
	End          string `json:"end"`
}

func (h *Handler) handleEndDate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	v := shared.NewValidator()
	start, _ := v.Date("start", query.Get("start"))
	days, _ := v.Days("days", query.Get("days"))
	includeStart := v.Bool("includeStart", query.Get("includeStart"), h.IncludeStartDefault)
	if v.Reject(w, requestID) {
		return
	}

	end, err := h.Calc.EndDate(start, days, includeStart)
	if err != nil {
		failDomain(w, err, requestID)
		return
	}

	api.Success(w, endDateResponse{
		Start:        shared.FormatDate(start),
		Days:         days,
		IncludeStart: includeStart,
		End:          shared.FormatDate(end),
	}, requestID)
}

type startDateResponse struct {
	End          string `json:"end"`
	Days         int    `json:"days"`
	IncludeStart bool   `json:"includeStart"`
	Start        string `json:"start"`
}

func (h *Handler) handleStartDate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	v := shared.NewValidator()
	end, _ := v.Date("end", query.Get("end"))
	days, _ := v.Days("days", query.Get("days"))
	includeStart := v.Bool("includeStart", query.Get("includeStart"), h.IncludeStartDefault)
	if v.Reject(w, requestID) {
		return
	}

	start, err := h.Calc.StartDate(end, days, includeStart)
	if err != nil {
		failDomain(w, err, requestID)
		return
	}

	api.Success(w, startDateResponse{
		End:          shared.FormatDate(end),
		Days:         days,
		IncludeStart: includeStart,
		Start:        shared.FormatDate(start),
	}, requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	v := shared.NewValidator()
	start, _ := v.Date("start", query.Get("start"))
	end, _ := v.Date("end", query.Get("end"))
	includeStart := v.Bool("includeStart", query.Get("includeStart"), h.IncludeStartDefault)
	format := query.Get("format")
	if format == "" {
		format = "csv"
	}
	format = v.Enum("format", format, []string{"csv", "pdf"})
	if v.Reject(w, requestID) {
		return
	}

	days, err := h.Calc.DayCount(start, end, includeStart)
	if err != nil {
		failDomain(w, err, requestID)
		return
	}

	summary := report.Summary{
		Start:        daterange.Normalize(start),
		End:          daterange.Normalize(end),
		IncludeStart: includeStart,
		Days:         days,
	}

	filename := fmt.Sprintf("range-%s-%s.%s", shared.FormatDate(start), shared.FormatDate(end), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		err = report.WritePDF(w, summary)
	default:
		w.Header().Set("Content-Type", "text/csv")
		err = report.WriteCSV(w, summary)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render export", requestID)
	}
}

// failDomain maps range-model failures to stable API error codes.
func failDomain(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, daterange.ErrInsufficientFields):
		api.Fail(w, http.StatusBadRequest, "insufficient_fields", err.Error(), requestID)
	case errors.Is(err, daterange.ErrStartAfterEnd):
		api.Fail(w, http.StatusBadRequest, "start_after_end", err.Error(), requestID)
	case errors.Is(err, daterange.ErrDaysNegative), errors.Is(err, daterange.ErrDaysTooLarge):
		api.Fail(w, http.StatusBadRequest, "days_out_of_range", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "calculation_failed", "failed to compute date range", requestID)
	}
}
