package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var role string
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, role, phone, location, created_at
		FROM user_profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &role, &p.Phone, &p.Location, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Role = domain.Role(role)
	return &p, nil
}

func (r *profileRepo) GetEmployerByProfileID(ctx context.Context, profileID int64) (*domain.EmployerProfile, error) {
	var e domain.EmployerProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_profile_id, company_name, description, website, company_size
		FROM employer_profiles WHERE user_profile_id = $1`, profileID,
	).Scan(&e.ID, &e.UserProfileID, &e.CompanyName, &e.Description, &e.Website, &e.CompanySize)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *profileRepo) GetJobSeekerByProfileID(ctx context.Context, profileID int64) (*domain.JobSeekerProfile, error) {
	var j domain.JobSeekerProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_profile_id, resume_url, skills, experience_years, education
		FROM jobseeker_profiles WHERE user_profile_id = $1`, profileID,
	).Scan(&j.ID, &j.UserProfileID, &j.ResumeURL, &j.Skills, &j.ExperienceYears, &j.Education)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *profileRepo) CreateEmployer(ctx context.Context, profile *domain.EmployerProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO employer_profiles (user_profile_id, company_name, description, website, company_size)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		profile.UserProfileID, profile.CompanyName, profile.Description,
		profile.Website, profile.CompanySize,
	).Scan(&profile.ID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *profileRepo) CreateJobSeeker(ctx context.Context, profile *domain.JobSeekerProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobseeker_profiles (user_profile_id, resume_url, skills, experience_years, education)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		profile.UserProfileID, profile.ResumeURL, profile.Skills,
		profile.ExperienceYears, profile.Education,
	).Scan(&profile.ID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// UpdateAll applies identity, profile, and role-specific updates in one
// transaction so a profile edit never commits partially.
func (r *profileRepo) UpdateAll(ctx context.Context, update *domain.ProfileUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if update.User != nil {
		_, err = tx.Exec(ctx, `
			UPDATE users SET first_name = $2, last_name = $3, email = $4, updated_at = $5
			WHERE id = $1`,
			update.User.ID, update.User.FirstName, update.User.LastName,
			update.User.Email, time.Now(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyExists
			}
			return err
		}
	}

	if update.Profile != nil {
		_, err = tx.Exec(ctx, `
			UPDATE user_profiles SET phone = $2, location = $3 WHERE id = $1`,
			update.Profile.ID, update.Profile.Phone, update.Profile.Location,
		)
		if err != nil {
			return err
		}
	}

	if update.Employer != nil {
		_, err = tx.Exec(ctx, `
			UPDATE employer_profiles
			SET company_name = $2, description = $3, website = $4, company_size = $5
			WHERE id = $1`,
			update.Employer.ID, update.Employer.CompanyName, update.Employer.Description,
			update.Employer.Website, update.Employer.CompanySize,
		)
		if err != nil {
			return err
		}
	}

	if update.JobSeeker != nil {
		_, err = tx.Exec(ctx, `
			UPDATE jobseeker_profiles
			SET resume_url = $2, skills = $3, experience_years = $4, education = $5
			WHERE id = $1`,
			update.JobSeeker.ID, update.JobSeeker.ResumeURL, update.JobSeeker.Skills,
			update.JobSeeker.ExperienceYears, update.JobSeeker.Education,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) CountEmployers(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employer_profiles`).Scan(&total)
	return total, err
}

func (r *profileRepo) CountJobSeekers(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobseeker_profiles`).Scan(&total)
	return total, err
}
