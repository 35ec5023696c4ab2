package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `
		INSERT INTO job_applications (job_id, jobseeker_profile_id, cover_letter, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.JobSeekerProfileID, app.CoverLetter, app.Status,
		app.AppliedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_profile_id, a.cover_letter, a.status,
			a.applied_at, a.updated_at,
			j.title,
			u.first_name || ' ' || u.last_name
		FROM job_applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN jobseeker_profiles jp ON a.jobseeker_profile_id = jp.id
		JOIN user_profiles up ON jp.user_profile_id = up.id
		JOIN users u ON up.user_id = u.id
		WHERE a.id = $1`

	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.JobSeekerProfileID, &app.CoverLetter, &app.Status,
		&app.AppliedAt, &app.UpdatedAt, &app.JobTitle, &app.ApplicantName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_id = $1 AND jobseeker_profile_id = $2)`,
		jobID, seekerProfileID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_profile_id, a.cover_letter, a.status,
			a.applied_at, a.updated_at,
			u.first_name || ' ' || u.last_name
		FROM job_applications a
		JOIN jobseeker_profiles jp ON a.jobseeker_profile_id = jp.id
		JOIN user_profiles up ON jp.user_profile_id = up.id
		JOIN users u ON up.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobSeekerProfileID, &app.CoverLetter, &app.Status,
			&app.AppliedAt, &app.UpdatedAt, &app.ApplicantName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func (r *applicationRepo) FetchBySeeker(ctx context.Context, seekerProfileID int64, limit, offset int) ([]domain.JobApplication, int64, error) {
	query := `
		SELECT
			a.id, a.job_id, a.jobseeker_profile_id, a.cover_letter, a.status,
			a.applied_at, a.updated_at,
			j.title, ep.company_name
		FROM job_applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN employer_profiles ep ON j.employer_profile_id = ep.id
		WHERE a.jobseeker_profile_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, seekerProfileID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applications []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobSeekerProfileID, &app.CoverLetter, &app.Status,
			&app.AppliedAt, &app.UpdatedAt, &app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, 0, err
		}
		applications = append(applications, app)
	}

	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE jobseeker_profile_id = $1`,
		seekerProfileID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
