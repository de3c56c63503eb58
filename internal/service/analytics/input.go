package analytics

import (
	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// ReportInput holds the parameters for an analytics report.
type ReportInput struct {
	// Range restricts the report to recent applications: "3m", "6m" or
	// "12m". Empty means all time.
	Range string
}

// Window maps the range keyword to a month window. Empty range means no
// filtering.
func (i *ReportInput) Window() (*Window, error) {
	switch i.Range {
	case "":
		return nil, nil
	case "3m":
		return &Window{Months: 3}, nil
	case "6m":
		return &Window{Months: 6}, nil
	case "12m":
		return &Window{Months: 12}, nil
	default:
		return nil, domain.NewValidationError("range", "must be one of: 3m, 6m, 12m")
	}
}
