package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	GetReport(ctx context.Context, input analytics.ReportInput) (*analytics.Report, error)
}

// AnalyticsHandler serves the aggregated statistics endpoint.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type reportResponse struct {
	Summary         summaryResponse       `json:"summary"`
	StatusBreakdown []statusCountResponse `json:"statusBreakdown"`
	Monthly         monthlyResponse       `json:"monthly"`
	ResponseTimes   responseTimesResponse `json:"responseTimes"`
	Sources         []sourceStatsResponse `json:"sources"`
}

type summaryResponse struct {
	TotalApplications  int `json:"totalApplications"`
	ActiveApplications int `json:"activeApplications"`
	InterviewRate      int `json:"interviewRate"`
	OfferRate          int `json:"offerRate"`
	AcceptanceRate     int `json:"acceptanceRate"`
}

type statusCountResponse struct {
	Status     string `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type monthlyResponse struct {
	Months       []monthCountResponse `json:"months"`
	PeakMonth    string               `json:"peakMonth"`
	MeanPerMonth float64              `json:"meanPerMonth"`
}

type monthCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type responseTimesResponse struct {
	SampleCount int                       `json:"sampleCount"`
	AverageDays int                       `json:"averageDays"`
	MinDays     int                       `json:"minDays"`
	MaxDays     int                       `json:"maxDays"`
	Histogram   []histogramBucketResponse `json:"histogram"`
}

type histogramBucketResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type sourceStatsResponse struct {
	Source         string `json:"source"`
	Total          int    `json:"total"`
	Interviews     int    `json:"interviews"`
	Offers         int    `json:"offers"`
	ConversionRate int    `json:"conversionRate"`
}

// GetReport handles GET /api/analytics. The optional range query parameter
// accepts 3m, 6m or 12m; absent means all time.
func (h *AnalyticsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	input := analytics.ReportInput{
		Range: r.URL.Query().Get("range"),
	}

	report, err := h.svc.GetReport(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (h *AnalyticsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toReportResponse(report *analytics.Report) reportResponse {
	resp := reportResponse{
		Summary: summaryResponse{
			TotalApplications:  report.Summary.TotalApplications,
			ActiveApplications: report.Summary.ActiveApplications,
			InterviewRate:      report.Summary.InterviewRate,
			OfferRate:          report.Summary.OfferRate,
			AcceptanceRate:     report.Summary.AcceptanceRate,
		},
		StatusBreakdown: make([]statusCountResponse, 0, len(report.StatusBreakdown)),
		Monthly: monthlyResponse{
			Months:       make([]monthCountResponse, 0, len(report.Monthly.Months)),
			PeakMonth:    report.Monthly.PeakMonth,
			MeanPerMonth: report.Monthly.MeanPerMonth,
		},
		ResponseTimes: responseTimesResponse{
			SampleCount: report.ResponseTimes.SampleCount,
			AverageDays: report.ResponseTimes.AverageDays,
			MinDays:     report.ResponseTimes.MinDays,
			MaxDays:     report.ResponseTimes.MaxDays,
			Histogram:   make([]histogramBucketResponse, 0, len(report.ResponseTimes.Histogram)),
		},
		Sources: make([]sourceStatsResponse, 0, len(report.Sources)),
	}

	for _, sc := range report.StatusBreakdown {
		resp.StatusBreakdown = append(resp.StatusBreakdown, statusCountResponse{
			Status:     string(sc.Status),
			Count:      sc.Count,
			Percentage: sc.Percentage,
		})
	}
	for _, m := range report.Monthly.Months {
		resp.Monthly.Months = append(resp.Monthly.Months, monthCountResponse{
			Label: m.Label,
			Count: m.Count,
		})
	}
	for _, b := range report.ResponseTimes.Histogram {
		resp.ResponseTimes.Histogram = append(resp.ResponseTimes.Histogram, histogramBucketResponse{
			Label: b.Label,
			Count: b.Count,
		})
	}
	for _, src := range report.Sources {
		resp.Sources = append(resp.Sources, sourceStatsResponse{
			Source:         src.Source,
			Total:          src.Total,
			Interviews:     src.Interviews,
			Offers:         src.Offers,
			ConversionRate: src.ConversionRate,
		})
	}

	return resp
}
