package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.employer_profile_id, j.category_id, j.title, j.description, j.requirements,
	j.job_type, j.experience_level, j.salary_min, j.salary_max, j.location, j.remote_work,
	j.skills_required, j.application_deadline, j.is_active, j.created_at, j.updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.EmployerProfileID, &job.CategoryID, &job.Title, &job.Description,
		&job.Requirements, &job.JobType, &job.ExperienceLevel, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.RemoteWork, &job.SkillsRequired, &job.ApplicationDeadline,
		&job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_profile_id, category_id, title, description, requirements,
		job_type, experience_level, salary_min, salary_max, location, remote_work,
		skills_required, application_deadline, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.EmployerProfileID, job.CategoryID, job.Title, job.Description, job.Requirements,
		job.JobType, job.ExperienceLevel, job.SalaryMin, job.SalaryMax, job.Location,
		job.RemoteWork, job.SkillsRequired, job.ApplicationDeadline, job.IsActive,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `, ep.company_name, c.name
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_profile_id = ep.id
		LEFT JOIN job_categories c ON j.category_id = c.id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerProfileID, &job.CategoryID, &job.Title, &job.Description,
		&job.Requirements, &job.JobType, &job.ExperienceLevel, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.RemoteWork, &job.SkillsRequired, &job.ApplicationDeadline,
		&job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// buildJobSearchWhere translates the filter into a conjunctive WHERE body
// over the joined jobs query. Only active jobs are ever considered; absent
// fields add no condition. Returns the clause and its positional args.
func buildJobSearchWhere(filter *domain.JobSearchFilter) (string, []interface{}) {
	conditions := []string{"j.is_active = TRUE"}
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter != nil {
		if q := strings.TrimSpace(filter.Query); q != "" {
			p := arg("%" + q + "%")
			conditions = append(conditions, fmt.Sprintf(
				"(j.title ILIKE %[1]s OR j.description ILIKE %[1]s OR ep.company_name ILIKE %[1]s OR j.skills_required ILIKE %[1]s)", p))
		}
		if filter.CategoryID != nil {
			conditions = append(conditions, "j.category_id = "+arg(*filter.CategoryID))
		}
		if filter.JobType != "" {
			conditions = append(conditions, "j.job_type = "+arg(filter.JobType))
		}
		if filter.ExperienceLevel != "" {
			conditions = append(conditions, "j.experience_level = "+arg(filter.ExperienceLevel))
		}
		if loc := strings.TrimSpace(filter.Location); loc != "" {
			conditions = append(conditions, "j.location ILIKE "+arg("%"+loc+"%"))
		}
		if filter.RemoteOnly {
			conditions = append(conditions, "j.remote_work = TRUE")
		}
		if filter.SalaryMin != nil {
			// NULL salary_min rows drop out of the comparison by SQL semantics
			conditions = append(conditions, "j.salary_min >= "+arg(*filter.SalaryMin))
		}
	}

	return strings.Join(conditions, " AND "), args
}

func (r *jobRepo) Search(ctx context.Context, filter *domain.JobSearchFilter, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	where, args := buildJobSearchWhere(filter)

	base := `
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_profile_id = ep.id
		LEFT JOIN job_categories c ON j.category_id = c.id
		WHERE ` + where

	query := fmt.Sprintf(`SELECT `+jobColumns+`, ep.company_name, c.name %s
		ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`, base, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var job domain.JobWithCompany
		if err := rows.Scan(
			&job.ID, &job.EmployerProfileID, &job.CategoryID, &job.Title, &job.Description,
			&job.Requirements, &job.JobType, &job.ExperienceLevel, &job.SalaryMin, &job.SalaryMax,
			&job.Location, &job.RemoteWork, &job.SkillsRequired, &job.ApplicationDeadline,
			&job.IsActive, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CategoryName,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) `+base, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerProfileID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j
		WHERE j.employer_profile_id = $1 ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerProfileID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerProfileID, &job.CategoryID, &job.Title, &job.Description,
			&job.Requirements, &job.JobType, &job.ExperienceLevel, &job.SalaryMin, &job.SalaryMax,
			&job.Location, &job.RemoteWork, &job.SkillsRequired, &job.ApplicationDeadline,
			&job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_profile_id = $1`, employerProfileID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		category_id = $2,
		title = $3,
		description = $4,
		requirements = $5,
		job_type = $6,
		experience_level = $7,
		salary_min = $8,
		salary_max = $9,
		location = $10,
		remote_work = $11,
		skills_required = $12,
		application_deadline = $13,
		updated_at = $14
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.CategoryID, job.Title, job.Description, job.Requirements,
		job.JobType, job.ExperienceLevel, job.SalaryMin, job.SalaryMax, job.Location,
		job.RemoteWork, job.SkillsRequired, job.ApplicationDeadline, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete hard-deletes the job; applications and saved entries go with it
// via ON DELETE CASCADE.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) ToggleActive(ctx context.Context, id int64) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx,
		`UPDATE jobs SET is_active = NOT is_active, updated_at = $2 WHERE id = $1 RETURNING is_active`,
		id, time.Now(),
	).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	return active, nil
}

func (r *jobRepo) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = TRUE`).Scan(&total)
	return total, err
}
