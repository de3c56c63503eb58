package analytics

import (
	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// Report is the full set of derived statistics over a user's applications.
// All percentages are integers, rounded at computation.
type Report struct {
	Summary         Summary
	StatusBreakdown []StatusCount
	Monthly         MonthlyStats
	ResponseTimes   ResponseTimeStats
	Sources         []SourceStats
}

// Summary holds the top-line pipeline rates.
type Summary struct {
	TotalApplications  int
	ActiveApplications int

	// InterviewRate counts Phone Screen and beyond, excluding Declined.
	InterviewRate int
	// OfferRate counts Offer, Accepted and Declined.
	OfferRate int
	// AcceptanceRate is Accepted over all resolved offers.
	AcceptanceRate int
}

// StatusCount is one row of the status distribution. Statuses with zero
// occurrences are omitted from the breakdown.
type StatusCount struct {
	Status     domain.ApplicationStatus
	Count      int
	Percentage int
}

// MonthlyStats buckets applications by the calendar month they were created.
type MonthlyStats struct {
	Months []MonthCount

	// PeakMonth is the label of the busiest month; first such month on ties.
	PeakMonth    string
	MeanPerMonth float64
}

// MonthCount is one month bucket, labeled like "Jan 2006".
type MonthCount struct {
	Label string
	Count int
}

// ResponseTimeStats summarizes days between applying and the last status
// movement, over records that progressed past Applied.
type ResponseTimeStats struct {
	SampleCount int
	AverageDays int
	MinDays     int
	MaxDays     int
	Histogram   []HistogramBucket
}

// HistogramBucket is one response-time bucket.
type HistogramBucket struct {
	Label string
	Count int
}

// SourceStats is the per-source funnel.
type SourceStats struct {
	Source     string
	Total      int
	Interviews int
	Offers     int

	// ConversionRate is the share of this source's applications that
	// reached an interview, as a rounded percentage.
	ConversionRate int
}

// Window restricts a report to applications created in the last N months.
type Window struct {
	Months int
}
