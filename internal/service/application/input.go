package application

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

const (
	maxTextLen  = 255
	maxURLLen   = 2000
	maxNotesLen = 5000
)

// CreateInput holds the parameters for creating an application.
type CreateInput struct {
	Company  string
	Position string

	// Status is the initial pipeline status. nil means Not Applied.
	Status *domain.ApplicationStatus

	Salary            *string
	Location          *string
	JobType           *domain.JobType
	JobURL            *string
	ApplicationSource *string
	ContactName       *string
	ContactEmail      *string
	Notes             *string

	ApplicationDate *time.Time
	NextActionDate  *time.Time
	NextActionStep  *string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Company) == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
	} else if len(i.Company) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "company", Message: "too long (max 255)"})
	}

	if strings.TrimSpace(i.Position) == "" {
		errs = append(errs, domain.FieldError{Field: "position", Message: "required"})
	} else if len(i.Position) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "position", Message: "too long (max 255)"})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.JobType != nil && !i.JobType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "job_type", Message: "invalid value"})
	}

	errs = append(errs, validateOptionalText(i.Salary, "salary", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.Location, "location", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.JobURL, "job_url", maxURLLen)...)
	errs = append(errs, validateOptionalText(i.ApplicationSource, "application_source", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.ContactName, "contact_name", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.Notes, "notes", maxNotesLen)...)
	errs = append(errs, validateOptionalText(i.NextActionStep, "next_action_step", maxTextLen)...)

	if i.ContactEmail != nil && *i.ContactEmail != "" && !strings.Contains(*i.ContactEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing an application. nil means
// "leave unchanged"; a pointer to the empty string (or zero time) clears
// an optional field.
type UpdateInput struct {
	Company  *string
	Position *string
	Status   *domain.ApplicationStatus

	Salary            *string
	Location          *string
	JobType           *domain.JobType
	JobURL            *string
	ApplicationSource *string
	ContactName       *string
	ContactEmail      *string
	Notes             *string

	ApplicationDate *time.Time
	NextActionDate  *time.Time
	NextActionStep  *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Company != nil {
		if strings.TrimSpace(*i.Company) == "" {
			errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
		} else if len(*i.Company) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: "company", Message: "too long (max 255)"})
		}
	}

	if i.Position != nil {
		if strings.TrimSpace(*i.Position) == "" {
			errs = append(errs, domain.FieldError{Field: "position", Message: "required"})
		} else if len(*i.Position) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: "position", Message: "too long (max 255)"})
		}
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.JobType != nil && *i.JobType != "" && !i.JobType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "job_type", Message: "invalid value"})
	}

	errs = append(errs, validateOptionalText(i.Salary, "salary", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.Location, "location", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.JobURL, "job_url", maxURLLen)...)
	errs = append(errs, validateOptionalText(i.ApplicationSource, "application_source", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.ContactName, "contact_name", maxTextLen)...)
	errs = append(errs, validateOptionalText(i.Notes, "notes", maxNotesLen)...)
	errs = append(errs, validateOptionalText(i.NextActionStep, "next_action_step", maxTextLen)...)

	if i.ContactEmail != nil && *i.ContactEmail != "" && !strings.Contains(*i.ContactEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangeStatusInput holds the parameters for a status transition.
type ChangeStatusInput struct {
	Status domain.ApplicationStatus
}

// Validate checks all fields and collects all errors.
func (i *ChangeStatusInput) Validate() error {
	if i.Status == "" {
		return domain.NewValidationError("status", "required")
	}
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "invalid value")
	}
	return nil
}

func validateOptionalText(v *string, field string, max int) []domain.FieldError {
	if v == nil || len(*v) <= max {
		return nil
	}
	return []domain.FieldError{{Field: field, Message: "too long (max " + strconv.Itoa(max) + ")"}}
}
