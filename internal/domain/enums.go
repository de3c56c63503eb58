package domain

// ApplicationStatus represents where an application stands in the pipeline.
type ApplicationStatus string

const (
	StatusNotApplied  ApplicationStatus = "Not Applied"
	StatusApplied     ApplicationStatus = "Applied"
	StatusNoResponse  ApplicationStatus = "No Response"
	StatusPhoneScreen ApplicationStatus = "Phone Screen"
	StatusInterview   ApplicationStatus = "Interview"
	StatusFinalRound  ApplicationStatus = "Final Round"
	StatusOffer       ApplicationStatus = "Offer"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusDeclined    ApplicationStatus = "Declined"
)

// AllStatuses lists every status in display order (pipeline order, not rank).
var AllStatuses = []ApplicationStatus{
	StatusNotApplied,
	StatusApplied,
	StatusNoResponse,
	StatusPhoneScreen,
	StatusInterview,
	StatusFinalRound,
	StatusOffer,
	StatusAccepted,
	StatusRejected,
	StatusDeclined,
}

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusNotApplied, StatusApplied, StatusNoResponse, StatusPhoneScreen,
		StatusInterview, StatusFinalRound, StatusOffer, StatusAccepted,
		StatusRejected, StatusDeclined:
		return true
	}
	return false
}

// IsTerminal reports whether the application has left the active pipeline.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusDeclined:
		return true
	}
	return false
}

// JobType represents the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

func (t JobType) String() string { return string(t) }

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}
