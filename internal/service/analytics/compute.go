package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// notSpecifiedSource groups applications with no recorded source.
const notSpecifiedSource = "Not specified"

// responseStatuses are the statuses that count as "the company responded"
// for response-time sampling.
var responseStatuses = statusSet(
	domain.StatusPhoneScreen,
	domain.StatusInterview,
	domain.StatusFinalRound,
	domain.StatusOffer,
	domain.StatusAccepted,
	domain.StatusRejected,
)

// funnelInterviewStatuses count as "reached an interview" in the per-source
// funnel. Declined is included: a declined offer still passed an interview.
var funnelInterviewStatuses = statusSet(
	domain.StatusPhoneScreen,
	domain.StatusInterview,
	domain.StatusFinalRound,
	domain.StatusOffer,
	domain.StatusAccepted,
	domain.StatusDeclined,
)

// interviewStatuses back the top-line interview rate. Unlike the funnel set
// this one excludes Declined.
var interviewStatuses = statusSet(
	domain.StatusPhoneScreen,
	domain.StatusInterview,
	domain.StatusFinalRound,
	domain.StatusOffer,
	domain.StatusAccepted,
)

// offerStatuses count as "received an offer": open, accepted or declined.
var offerStatuses = statusSet(
	domain.StatusOffer,
	domain.StatusAccepted,
	domain.StatusDeclined,
)

func statusSet(statuses ...domain.ApplicationStatus) map[domain.ApplicationStatus]bool {
	set := make(map[domain.ApplicationStatus]bool, len(statuses))
	for _, s := range statuses {
		set[s] = true
	}
	return set
}

// ComputeReport derives the full analytics report from the given application
// set. window == nil means no recency filter. maxResponseDays bounds a valid
// response-time sample; larger values are treated as stale records.
// Pure function: no I/O, no mutation of apps.
func ComputeReport(apps []domain.Application, window *Window, now time.Time, maxResponseDays int) Report {
	filtered := filterWindow(apps, window, now)

	return Report{
		Summary:         computeSummary(filtered),
		StatusBreakdown: computeStatusBreakdown(filtered),
		Monthly:         computeMonthly(filtered),
		ResponseTimes:   computeResponseTimes(filtered, maxResponseDays),
		Sources:         computeSources(filtered),
	}
}

// filterWindow keeps applications created within the last window.Months
// calendar months.
func filterWindow(apps []domain.Application, window *Window, now time.Time) []domain.Application {
	if window == nil {
		return apps
	}

	cutoff := now.AddDate(0, -window.Months, 0)
	filtered := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if !app.CreatedAt.Before(cutoff) {
			filtered = append(filtered, app)
		}
	}
	return filtered
}

func computeSummary(apps []domain.Application) Summary {
	total := len(apps)

	var active, interviews, offers, accepted, resolved int
	for _, app := range apps {
		if !app.Status.IsTerminal() {
			active++
		}
		if interviewStatuses[app.Status] {
			interviews++
		}
		if offerStatuses[app.Status] {
			offers++
			resolved++
		}
		if app.Status == domain.StatusAccepted {
			accepted++
		}
	}

	return Summary{
		TotalApplications:  total,
		ActiveApplications: active,
		InterviewRate:      roundPct(interviews, total),
		OfferRate:          roundPct(offers, total),
		AcceptanceRate:     roundPct(accepted, resolved),
	}
}

// computeStatusBreakdown counts applications per status, in display order.
// Absent statuses are omitted rather than zero-filled.
func computeStatusBreakdown(apps []domain.Application) []StatusCount {
	counts := make(map[domain.ApplicationStatus]int)
	for _, app := range apps {
		counts[app.Status]++
	}

	breakdown := make([]StatusCount, 0, len(counts))
	for _, status := range domain.AllStatuses {
		count := counts[status]
		if count == 0 {
			continue
		}
		breakdown = append(breakdown, StatusCount{
			Status:     status,
			Count:      count,
			Percentage: roundPct(count, len(apps)),
		})
	}
	return breakdown
}

// computeMonthly buckets applications by creation month. Buckets appear in
// chronological order of first occurrence.
func computeMonthly(apps []domain.Application) MonthlyStats {
	sorted := make([]domain.Application, len(apps))
	copy(sorted, apps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	counts := make(map[string]int)
	var order []string
	for _, app := range sorted {
		label := app.CreatedAt.Format("Jan 2006")
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	stats := MonthlyStats{Months: make([]MonthCount, 0, len(order))}
	var total, peak int
	for _, label := range order {
		count := counts[label]
		stats.Months = append(stats.Months, MonthCount{Label: label, Count: count})
		total += count
		if count > peak {
			peak = count
			stats.PeakMonth = label
		}
	}
	if len(order) > 0 {
		stats.MeanPerMonth = float64(total) / float64(len(order))
	}
	return stats
}

// computeResponseTimes samples days between applying and the last record
// update, for applications that progressed past Applied. UpdatedAt stands in
// for the time of the last status change since no transition history is kept,
// so an unrelated edit can skew a sample.
func computeResponseTimes(apps []domain.Application, maxDays int) ResponseTimeStats {
	buckets := []struct {
		label string
		min   int
		max   int
	}{
		{"0-7 days", 0, 7},
		{"8-14 days", 8, 14},
		{"15-30 days", 15, 30},
		{"31-60 days", 31, 60},
		{"61+ days", 61, math.MaxInt},
	}

	stats := ResponseTimeStats{Histogram: make([]HistogramBucket, len(buckets))}
	for i, b := range buckets {
		stats.Histogram[i] = HistogramBucket{Label: b.label}
	}

	var sum int
	for _, app := range apps {
		if app.ApplicationDate == nil || !responseStatuses[app.Status] {
			continue
		}
		days := int(app.UpdatedAt.Sub(*app.ApplicationDate).Hours() / 24)
		if days < 0 || days > maxDays {
			continue
		}

		if stats.SampleCount == 0 || days < stats.MinDays {
			stats.MinDays = days
		}
		if days > stats.MaxDays {
			stats.MaxDays = days
		}
		sum += days
		stats.SampleCount++

		for i, b := range buckets {
			if days >= b.min && days <= b.max {
				stats.Histogram[i].Count++
				break
			}
		}
	}

	if stats.SampleCount > 0 {
		stats.AverageDays = int(math.Round(float64(sum) / float64(stats.SampleCount)))
	}
	return stats
}

// computeSources groups applications into a per-source funnel. Groups appear
// in order of first occurrence.
func computeSources(apps []domain.Application) []SourceStats {
	index := make(map[string]int)
	var sources []SourceStats

	for _, app := range apps {
		name := notSpecifiedSource
		if app.ApplicationSource != nil && *app.ApplicationSource != "" {
			name = *app.ApplicationSource
		}

		i, ok := index[name]
		if !ok {
			i = len(sources)
			index[name] = i
			sources = append(sources, SourceStats{Source: name})
		}

		sources[i].Total++
		if funnelInterviewStatuses[app.Status] {
			sources[i].Interviews++
		}
		if offerStatuses[app.Status] {
			sources[i].Offers++
		}
	}

	for i := range sources {
		sources[i].ConversionRate = roundPct(sources[i].Interviews, sources[i].Total)
	}
	return sources
}

// roundPct returns part/total as a rounded integer percentage, 0 when total
// is 0.
func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
