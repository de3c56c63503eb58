package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a single tracked job application. Every application belongs
// to exactly one user; the owner never changes after creation.
type Application struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Company  string
	Position string
	Status   ApplicationStatus

	Salary            *string
	Location          *string
	JobType           *JobType
	JobURL            *string
	ApplicationSource *string
	ContactName       *string
	ContactEmail      *string
	Notes             *string

	// ApplicationDate is the date the application was submitted. Once set,
	// automatic status logic never overwrites it; only an explicit user edit may.
	ApplicationDate *time.Time

	// NextActionDate and NextActionStep describe the suggested follow-up.
	NextActionDate *time.Time
	NextActionStep *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplicationPatch is a sparse partial update. nil means "leave unchanged".
// For optional fields a pointer to the zero value ("" or the zero time)
// clears the column, mirroring how explicit user edits may blank a date.
type ApplicationPatch struct {
	Company  *string
	Position *string
	Status   *ApplicationStatus

	Salary            *string
	Location          *string
	JobType           *JobType
	JobURL            *string
	ApplicationSource *string
	ContactName       *string
	ContactEmail      *string
	Notes             *string

	ApplicationDate *time.Time
	NextActionDate  *time.Time
	NextActionStep  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ApplicationPatch) IsEmpty() bool {
	return p.Company == nil && p.Position == nil && p.Status == nil &&
		p.Salary == nil && p.Location == nil && p.JobType == nil &&
		p.JobURL == nil && p.ApplicationSource == nil && p.ContactName == nil &&
		p.ContactEmail == nil && p.Notes == nil &&
		p.ApplicationDate == nil && p.NextActionDate == nil && p.NextActionStep == nil
}
