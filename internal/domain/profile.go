package domain

import (
	"context"
	"time"
)

// Role tags a profile as one side of the marketplace. It is immutable
// after registration.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "job_seeker"

	// RoleAny is accepted by the access gate when an operation only needs
	// an authenticated identity with a completed profile of either role.
	RoleAny Role = "any"
)

func (r Role) IsValid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

// CompletionPath is the endpoint that finishes the profile for this role.
func (r Role) CompletionPath() string {
	if r == RoleEmployer {
		return "/v1/profile/employer"
	}
	return "/v1/profile/jobseeker"
}

type UserProfile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type EmployerProfile struct {
	ID            int64   `json:"id"`
	UserProfileID int64   `json:"user_profile_id"`
	CompanyName   string  `json:"company_name"`
	Description   *string `json:"description,omitempty"`
	Website       *string `json:"website,omitempty"`
	CompanySize   *string `json:"company_size,omitempty"`
}

type JobSeekerProfile struct {
	ID              int64   `json:"id"`
	UserProfileID   int64   `json:"user_profile_id"`
	ResumeURL       *string `json:"resume_url,omitempty"`
	Skills          string  `json:"skills"` // comma-separated free text
	ExperienceYears int     `json:"experience_years"`
	Education       *string `json:"education,omitempty"`
}

// ProfileView is the assembled profile page: identity, profile, and the
// role-specific half that exists for this user.
type ProfileView struct {
	User      *User             `json:"user"`
	Profile   *UserProfile      `json:"profile"`
	Employer  *EmployerProfile  `json:"employer_profile,omitempty"`
	JobSeeker *JobSeekerProfile `json:"jobseeker_profile,omitempty"`
}

// EmployerProfileInput is the employer completion/edit form
type EmployerProfileInput struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	CompanySize string `json:"company_size" validate:"max=50"`
}

// JobSeekerProfileInput is the job seeker completion/edit form
type JobSeekerProfileInput struct {
	ResumeURL       string `json:"resume_url"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	Education       string `json:"education" validate:"max=200"`
}

// ProfileEditInput updates identity, profile, and role-specific fields as
// one logical change. All sections must validate before anything commits.
type ProfileEditInput struct {
	FirstName string `json:"first_name" validate:"required,valid_name"`
	LastName  string `json:"last_name" validate:"required,valid_name"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,valid_phone"`
	Location  string `json:"location"`

	Employer  *EmployerProfileInput  `json:"employer,omitempty"`
	JobSeeker *JobSeekerProfileInput `json:"jobseeker,omitempty"`
}

// ProfileUpdate is the repository-side payload for the all-or-nothing edit.
// Nil role halves are left untouched.
type ProfileUpdate struct {
	User      *User
	Profile   *UserProfile
	Employer  *EmployerProfile
	JobSeeker *JobSeekerProfile
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	GetEmployerByProfileID(ctx context.Context, profileID int64) (*EmployerProfile, error)
	GetJobSeekerByProfileID(ctx context.Context, profileID int64) (*JobSeekerProfile, error)
	// CreateEmployer/CreateJobSeeker insert the role-specific half exactly
	// once; a second insert surfaces as ErrAlreadyExists.
	CreateEmployer(ctx context.Context, profile *EmployerProfile) error
	CreateJobSeeker(ctx context.Context, profile *JobSeekerProfile) error
	// UpdateAll applies the edit in a single transaction.
	UpdateAll(ctx context.Context, update *ProfileUpdate) error
	CountEmployers(ctx context.Context) (int64, error)
	CountJobSeekers(ctx context.Context) (int64, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*ProfileView, error)
	// CompleteEmployer/CompleteJobSeeker create the role-specific profile.
	// Idempotent: when it already exists, the existing profile is returned
	// with created=false instead of an error.
	CompleteEmployer(ctx context.Context, userID string, input *EmployerProfileInput) (*EmployerProfile, bool, error)
	CompleteJobSeeker(ctx context.Context, userID string, input *JobSeekerProfileInput) (*JobSeekerProfile, bool, error)
	UpdateProfile(ctx context.Context, userID string, input *ProfileEditInput) (*ProfileView, error)
}
