package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// Save upserts the bookmark. ON CONFLICT DO NOTHING makes concurrent
// duplicate saves collapse into the same row; RowsAffected tells the
// caller whether this call created it.
func (r *savedJobRepo) Save(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	result, err := r.db.Exec(ctx, `
		INSERT INTO saved_jobs (job_id, jobseeker_profile_id, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id, jobseeker_profile_id) DO NOTHING`,
		jobID, seekerProfileID, time.Now(),
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *savedJobRepo) Delete(ctx context.Context, jobID, seekerProfileID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE job_id = $1 AND jobseeker_profile_id = $2`,
		jobID, seekerProfileID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *savedJobRepo) Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE job_id = $1 AND jobseeker_profile_id = $2)`,
		jobID, seekerProfileID,
	).Scan(&exists)
	return exists, err
}

func (r *savedJobRepo) FetchBySeeker(ctx context.Context, seekerProfileID int64, limit, offset int) ([]domain.SavedJob, int64, error) {
	query := `
		SELECT
			s.id, s.job_id, s.jobseeker_profile_id, s.saved_at,
			j.title, ep.company_name, j.location, j.is_active
		FROM saved_jobs s
		JOIN jobs j ON s.job_id = j.id
		JOIN employer_profiles ep ON j.employer_profile_id = ep.id
		WHERE s.jobseeker_profile_id = $1
		ORDER BY s.saved_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, seekerProfileID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var saved []domain.SavedJob
	for rows.Next() {
		var s domain.SavedJob
		if err := rows.Scan(
			&s.ID, &s.JobID, &s.JobSeekerProfileID, &s.SavedAt,
			&s.JobTitle, &s.CompanyName, &s.Location, &s.JobIsActive,
		); err != nil {
			return nil, 0, err
		}
		saved = append(saved, s)
	}

	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_jobs WHERE jobseeker_profile_id = $1`,
		seekerProfileID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return saved, total, nil
}
