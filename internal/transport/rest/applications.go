package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
	"github.com/heartmarshall/applytrack-backend/internal/service/application"
)

// applicationService defines the minimal interface needed by ApplicationHandler.
type applicationService interface {
	Create(ctx context.Context, input application.CreateInput) (*domain.Application, error)
	Get(ctx context.Context, appID uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) (*application.ListResult, error)
	Update(ctx context.Context, appID uuid.UUID, input application.UpdateInput) (*domain.Application, error)
	Delete(ctx context.Context, appID uuid.UUID) error
	ChangeStatus(ctx context.Context, appID uuid.UUID, input application.ChangeStatusInput) (*domain.Application, error)
}

// ApplicationHandler serves application CRUD and status endpoints.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "applications")}
}

type createApplicationRequest struct {
	Company  string  `json:"company"`
	Position string  `json:"position"`
	Status   *string `json:"status"`

	Salary            *string `json:"salary"`
	Location          *string `json:"location"`
	JobType           *string `json:"jobType"`
	JobURL            *string `json:"jobUrl"`
	ApplicationSource *string `json:"applicationSource"`
	ContactName       *string `json:"contactName"`
	ContactEmail      *string `json:"contactEmail"`
	Notes             *string `json:"notes"`

	ApplicationDate *time.Time `json:"applicationDate"`
	NextActionDate  *time.Time `json:"nextActionDate"`
	NextActionStep  *string    `json:"nextActionStep"`
}

type updateApplicationRequest struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status"`

	Salary            *string `json:"salary"`
	Location          *string `json:"location"`
	JobType           *string `json:"jobType"`
	JobURL            *string `json:"jobUrl"`
	ApplicationSource *string `json:"applicationSource"`
	ContactName       *string `json:"contactName"`
	ContactEmail      *string `json:"contactEmail"`
	Notes             *string `json:"notes"`

	ApplicationDate *time.Time `json:"applicationDate"`
	NextActionDate  *time.Time `json:"nextActionDate"`
	NextActionStep  *string    `json:"nextActionStep"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type applicationResponse struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Status   string `json:"status"`

	Salary            *string `json:"salary,omitempty"`
	Location          *string `json:"location,omitempty"`
	JobType           *string `json:"jobType,omitempty"`
	JobURL            *string `json:"jobUrl,omitempty"`
	ApplicationSource *string `json:"applicationSource,omitempty"`
	ContactName       *string `json:"contactName,omitempty"`
	ContactEmail      *string `json:"contactEmail,omitempty"`
	Notes             *string `json:"notes,omitempty"`

	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
	NextActionDate  *time.Time `json:"nextActionDate,omitempty"`
	NextActionStep  *string    `json:"nextActionStep,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listApplicationsResponse struct {
	Applications []applicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

// Create handles POST /api/applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := application.CreateInput{
		Company:           req.Company,
		Position:          req.Position,
		Status:            toStatusPtr(req.Status),
		Salary:            req.Salary,
		Location:          req.Location,
		JobType:           toJobTypePtr(req.JobType),
		JobURL:            req.JobURL,
		ApplicationSource: req.ApplicationSource,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		Notes:             req.Notes,
		ApplicationDate:   req.ApplicationDate,
		NextActionDate:    req.NextActionDate,
		NextActionStep:    req.NextActionStep,
	}

	app, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// Get handles GET /api/applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	appID, ok := parseID(w, r)
	if !ok {
		return
	}

	app, err := h.svc.Get(r.Context(), appID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// List handles GET /api/applications.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.ApplicationFilter{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if s := q.Get("search"); s != "" {
		filter.Search = &s
	}
	if s := q.Get("status"); s != "" {
		status := domain.ApplicationStatus(s)
		filter.Status = &status
	}
	if s := q.Get("source"); s != "" {
		filter.Source = &s
	}
	if s := q.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Limit = n
		}
	}
	if s := q.Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Offset = n
		}
	}

	result, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := listApplicationsResponse{
		Applications: make([]applicationResponse, 0, len(result.Applications)),
		Total:        result.Total,
	}
	for i := range result.Applications {
		resp.Applications = append(resp.Applications, toApplicationResponse(&result.Applications[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/applications/{id}.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	appID, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := application.UpdateInput{
		Company:           req.Company,
		Position:          req.Position,
		Status:            toStatusPtr(req.Status),
		Salary:            req.Salary,
		Location:          req.Location,
		JobType:           toJobTypePtr(req.JobType),
		JobURL:            req.JobURL,
		ApplicationSource: req.ApplicationSource,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		Notes:             req.Notes,
		ApplicationDate:   req.ApplicationDate,
		NextActionDate:    req.NextActionDate,
		NextActionStep:    req.NextActionStep,
	}

	app, err := h.svc.Update(r.Context(), appID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Delete handles DELETE /api/applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	appID, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), appID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus handles POST /api/applications/{id}/status.
func (h *ApplicationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	appID, ok := parseID(w, r)
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.svc.ChangeStatus(r.Context(), appID, application.ChangeStatusInput{
		Status: domain.ApplicationStatus(req.Status),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

func (h *ApplicationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func toStatusPtr(s *string) *domain.ApplicationStatus {
	if s == nil {
		return nil
	}
	status := domain.ApplicationStatus(*s)
	return &status
}

func toJobTypePtr(s *string) *domain.JobType {
	if s == nil {
		return nil
	}
	jt := domain.JobType(*s)
	return &jt
}

func toApplicationResponse(app *domain.Application) applicationResponse {
	var jobType *string
	if app.JobType != nil {
		s := string(*app.JobType)
		jobType = &s
	}

	return applicationResponse{
		ID:                app.ID.String(),
		Company:           app.Company,
		Position:          app.Position,
		Status:            string(app.Status),
		Salary:            app.Salary,
		Location:          app.Location,
		JobType:           jobType,
		JobURL:            app.JobURL,
		ApplicationSource: app.ApplicationSource,
		ContactName:       app.ContactName,
		ContactEmail:      app.ContactEmail,
		Notes:             app.Notes,
		ApplicationDate:   app.ApplicationDate,
		NextActionDate:    app.NextActionDate,
		NextActionStep:    app.NextActionStep,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
}
