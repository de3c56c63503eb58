package application

import (
	"time"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// suggestion is a recommended follow-up action with a due timeframe.
type suggestion struct {
	Action        string
	TimeframeDays int
}

// defaultSuggestion is used for statuses with no specific follow-up.
var defaultSuggestion = suggestion{Action: "Update status", TimeframeDays: 7}

// suggestionByStatus maps each pipeline status to its follow-up suggestion.
// Terminal statuses (Accepted, Rejected, Declined) fall back to the default.
var suggestionByStatus = map[domain.ApplicationStatus]suggestion{
	domain.StatusNotApplied:  {Action: "Submit application", TimeframeDays: 7},
	domain.StatusApplied:     {Action: "Follow up on application", TimeframeDays: 14},
	domain.StatusNoResponse:  {Action: "Send follow-up email", TimeframeDays: 7},
	domain.StatusPhoneScreen: {Action: "Prepare for phone screen", TimeframeDays: 3},
	domain.StatusInterview:   {Action: "Send thank you note", TimeframeDays: 1},
	domain.StatusFinalRound:  {Action: "Send final thank you note", TimeframeDays: 1},
	domain.StatusOffer:       {Action: "Review and respond to offer", TimeframeDays: 5},
}

// suggestFor returns the follow-up suggestion for the given status.
func suggestFor(status domain.ApplicationStatus) suggestion {
	if s, ok := suggestionByStatus[status]; ok {
		return s
	}
	return defaultSuggestion
}

// ProposeTransition computes the patch for moving app to newStatus at the
// given moment. It is a pure function: no validation, no persistence.
// The caller must have already checked that newStatus is a valid status
// and that app belongs to the requesting user.
//
// Rules:
//   - The patch always carries the new status.
//   - A follow-up suggestion (next action step and due date) is applied only
//     when the record has no pending next action, or the status actually
//     changes. Re-saving the same status never resets a pending suggestion.
//   - ApplicationDate is set to now only when moving to Applied and the date
//     is still unset. It is never overwritten once present.
func ProposeTransition(app *domain.Application, newStatus domain.ApplicationStatus, now time.Time) domain.ApplicationPatch {
	patch := domain.ApplicationPatch{
		Status: &newStatus,
	}

	if app.NextActionDate == nil || app.Status != newStatus {
		s := suggestFor(newStatus)
		due := now.AddDate(0, 0, s.TimeframeDays)
		patch.NextActionStep = &s.Action
		patch.NextActionDate = &due
	}

	if newStatus == domain.StatusApplied && app.ApplicationDate == nil {
		appliedAt := now
		patch.ApplicationDate = &appliedAt
	}

	return patch
}
