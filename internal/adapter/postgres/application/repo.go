// Package application implements the Application repository using PostgreSQL.
// All queries use raw SQL except the filtered list, which is assembled with
// squirrel because its WHERE clause depends on which filters are set.
package application

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const applicationColumns = `id, user_id, company, position, status, salary, location, job_type,
job_url, application_source, contact_name, contact_email, notes,
application_date, next_action_date, next_action_step, created_at, updated_at`

const createSQL = `
INSERT INTO applications (
    id, user_id, company, position, status, salary, location, job_type,
    job_url, application_source, contact_name, contact_email, notes,
    application_date, next_action_date, next_action_step
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING ` + applicationColumns

const getByIDSQL = `
SELECT ` + applicationColumns + `
FROM applications
WHERE id = $1 AND user_id = $2`

const listAllSQL = `
SELECT ` + applicationColumns + `
FROM applications
WHERE user_id = $1
ORDER BY created_at DESC`

const deleteSQL = `
DELETE FROM applications
WHERE id = $1 AND user_id = $2`

const countByUserSQL = `
SELECT count(*) FROM applications WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an application by primary key with user_id filter.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, appID uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, appID, userID)

	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", appID)
	}

	return app, nil
}

// ListAll returns every application owned by the user, newest first.
// Used by the analytics service, which aggregates over the full collection.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return apps, nil
}

// List returns applications matching the filter plus the total match count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ApplicationFilter) ([]domain.Application, int, error) {
	normalizeFilter(&filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Source != nil && *filter.Source != "" {
		where = append(where, sq.Eq{"application_source": *filter.Source})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"company": pattern},
			sq.ILike{"position": pattern},
		})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("applications").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	listSQL, listArgs, err := psql.Select(applicationColumns).
		From("applications").
		Where(where).
		OrderBy(filter.SortBy + " " + filter.SortOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}

	return apps, total, nil
}

// Count returns the number of applications for a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application and returns the persisted domain.Application.
func (r *Repo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		app.ID,
		app.UserID,
		app.Company,
		app.Position,
		string(app.Status),
		ptrStringToPgText(app.Salary),
		ptrStringToPgText(app.Location),
		jobTypeToPgText(app.JobType),
		ptrStringToPgText(app.JobURL),
		ptrStringToPgText(app.ApplicationSource),
		ptrStringToPgText(app.ContactName),
		ptrStringToPgText(app.ContactEmail),
		ptrStringToPgText(app.Notes),
		ptrTimeToPg(app.ApplicationDate),
		ptrTimeToPg(app.NextActionDate),
		ptrStringToPgText(app.NextActionStep),
	)

	created, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", app.ID)
	}

	return created, nil
}

// Update applies a sparse patch as a single conditional UPDATE matching both
// id and user_id, so concurrent transitions resolve last-write-wins at the
// row level. Returns domain.ErrNotFound if the application does not exist or
// belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, appID uuid.UUID, patch domain.ApplicationPatch) (*domain.Application, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, appID)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("applications").Set("updated_at", sq.Expr("now()"))

	if patch.Company != nil {
		update = update.Set("company", *patch.Company)
	}
	if patch.Position != nil {
		update = update.Set("position", *patch.Position)
	}
	if patch.Status != nil {
		update = update.Set("status", string(*patch.Status))
	}
	if patch.Salary != nil {
		update = update.Set("salary", emptyAsNull(*patch.Salary))
	}
	if patch.Location != nil {
		update = update.Set("location", emptyAsNull(*patch.Location))
	}
	if patch.JobType != nil {
		update = update.Set("job_type", emptyAsNull(string(*patch.JobType)))
	}
	if patch.JobURL != nil {
		update = update.Set("job_url", emptyAsNull(*patch.JobURL))
	}
	if patch.ApplicationSource != nil {
		update = update.Set("application_source", emptyAsNull(*patch.ApplicationSource))
	}
	if patch.ContactName != nil {
		update = update.Set("contact_name", emptyAsNull(*patch.ContactName))
	}
	if patch.ContactEmail != nil {
		update = update.Set("contact_email", emptyAsNull(*patch.ContactEmail))
	}
	if patch.Notes != nil {
		update = update.Set("notes", emptyAsNull(*patch.Notes))
	}
	if patch.ApplicationDate != nil {
		update = update.Set("application_date", zeroTimeAsNull(*patch.ApplicationDate))
	}
	if patch.NextActionDate != nil {
		update = update.Set("next_action_date", zeroTimeAsNull(*patch.NextActionDate))
	}
	if patch.NextActionStep != nil {
		update = update.Set("next_action_step", emptyAsNull(*patch.NextActionStep))
	}

	updateSQL, args, err := update.
		Where(sq.Eq{"id": appID, "user_id": userID}).
		Suffix("RETURNING " + applicationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	row := querier.QueryRow(ctx, updateSQL, args...)

	updated, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", appID)
	}

	return updated, nil
}

// Delete removes an application. Deletion is unconditional and final.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, appID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, appID, userID)
	if err != nil {
		return postgres.MapError(err, "application", appID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", appID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		app       domain.Application
		salary    pgtype.Text
		location  pgtype.Text
		jobType   pgtype.Text
		jobURL    pgtype.Text
		source    pgtype.Text
		cName     pgtype.Text
		cEmail    pgtype.Text
		notes     pgtype.Text
		appDate   pgtype.Timestamptz
		nextDate  pgtype.Timestamptz
		nextStep  pgtype.Text
		statusRaw string
	)

	err := row.Scan(
		&app.ID, &app.UserID, &app.Company, &app.Position, &statusRaw,
		&salary, &location, &jobType, &jobURL, &source, &cName, &cEmail, &notes,
		&appDate, &nextDate, &nextStep, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	app.Status = domain.ApplicationStatus(statusRaw)
	app.Salary = pgTextToPtr(salary)
	app.Location = pgTextToPtr(location)
	app.JobURL = pgTextToPtr(jobURL)
	app.ApplicationSource = pgTextToPtr(source)
	app.ContactName = pgTextToPtr(cName)
	app.ContactEmail = pgTextToPtr(cEmail)
	app.Notes = pgTextToPtr(notes)
	app.NextActionStep = pgTextToPtr(nextStep)
	app.ApplicationDate = pgTimeToPtr(appDate)
	app.NextActionDate = pgTimeToPtr(nextDate)

	if jobType.Valid {
		jt := domain.JobType(jobType.String)
		app.JobType = &jt
	}

	return &app, nil
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	var result []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Application{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func jobTypeToPgText(t *domain.JobType) pgtype.Text {
	if t == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*t), Valid: true}
}

func ptrTimeToPg(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func pgTimeToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

// emptyAsNull maps "" to NULL so patching with an empty string clears the column.
func emptyAsNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// zeroTimeAsNull maps the zero time to NULL so patching can clear a date.
func zeroTimeAsNull(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
