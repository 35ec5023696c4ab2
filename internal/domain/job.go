package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
)

// Job type choices
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeFreelance  = "freelance"
)

// Experience level choices
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

type Job struct {
	ID                  int64      `json:"id"`
	EmployerProfileID   int64      `json:"employer_profile_id"`
	CategoryID          *int64     `json:"category_id,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        string     `json:"requirements"`
	JobType             string     `json:"job_type"`
	ExperienceLevel     string     `json:"experience_level"`
	SalaryMin           *float64   `json:"salary_min,omitempty"`
	SalaryMax           *float64   `json:"salary_max,omitempty"`
	Location            string     `json:"location"`
	RemoteWork          bool       `json:"remote_work"`
	SkillsRequired      string     `json:"skills_required"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// JobWithCompany extends Job with employer and category display fields
type JobWithCompany struct {
	Job
	CompanyName  string  `json:"company_name"`
	CategoryName *string `json:"category_name,omitempty"`
}

// JobDetail augments the job page with the viewer's relationship to it.
// The flags are only meaningful for a job seeker with a completed profile.
type JobDetail struct {
	JobWithCompany
	CanApply   bool `json:"can_apply"`
	HasApplied bool `json:"has_applied"`
	IsSaved    bool `json:"is_saved"`
}

type JobCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// JobSearchFilter is the multi-field search query. Zero-valued fields
// impose no constraint; supplied fields combine conjunctively.
type JobSearchFilter struct {
	Query           string
	CategoryID      *int64
	JobType         string
	ExperienceLevel string
	Location        string
	RemoteOnly      bool
	SalaryMin       *float64
}

// JobPage is one page of search results plus the pre-pagination total.
type JobPage struct {
	Jobs     []JobWithCompany `json:"jobs"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// PlatformStats backs the home page counters
type PlatformStats struct {
	ActiveJobs int64 `json:"active_jobs"`
	Employers  int64 `json:"employers"`
	JobSeekers int64 `json:"job_seekers"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	// Search evaluates the filter over active jobs only, ordered by
	// creation time descending, and reports the total matching count.
	Search(ctx context.Context, filter *JobSearchFilter, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByEmployer(ctx context.Context, employerProfileID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
	// ToggleActive flips is_active and returns the new value.
	ToggleActive(ctx context.Context, id int64) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]JobCategory, error)
	GetByID(ctx context.Context, id int64) (*JobCategory, error)
}

type JobUsecase interface {
	Search(ctx context.Context, filter *JobSearchFilter, page int) (*JobPage, error)
	// GetDetail resolves the job page; viewerID may be empty for anonymous
	// visitors, in which case the relationship flags stay false.
	GetDetail(ctx context.Context, id int64, viewerID string) (*JobDetail, error)
	Create(ctx context.Context, userID string, job *Job) error
	Update(ctx context.Context, userID string, job *Job) error
	Delete(ctx context.Context, userID string, id int64) error
	ToggleActive(ctx context.Context, userID string, id int64) (bool, error)
	ListByEmployer(ctx context.Context, userID string, page int) ([]Job, int64, error)
	ListCategories(ctx context.Context) ([]JobCategory, error)
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}
