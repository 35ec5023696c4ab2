package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// ValidApplicationStatusTransition reports whether an employer may move an
// application into the given status. Pending is the initial state only.
func ValidApplicationStatusTransition(status string) bool {
	switch status {
	case ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// JobApplication links a job seeker to a job. At most one application may
// exist per (job, applicant) pair; the storage unique constraint is the
// authoritative guarantee.
type JobApplication struct {
	ID                 int64     `json:"id"`
	JobID              int64     `json:"job_id"`
	JobSeekerProfileID int64     `json:"jobseeker_profile_id"`
	CoverLetter        string    `json:"cover_letter"`
	Status             string    `json:"status"`
	AppliedAt          time.Time `json:"applied_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application; a duplicate (job, applicant) pair
	// surfaces as ErrAlreadyExists via the unique constraint.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error)
	FetchByJobID(ctx context.Context, jobID int64) ([]JobApplication, error)
	FetchBySeeker(ctx context.Context, seekerProfileID int64, limit, offset int) ([]JobApplication, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Apply submits an application to an active job on behalf of a
	// complete job seeker; duplicates yield a Conflict outcome.
	Apply(ctx context.Context, userID string, jobID int64, coverLetter string) (*JobApplication, error)
	ListMine(ctx context.Context, userID string, page int) ([]JobApplication, int64, error)
	// ListForJob is owner-only: the employer must own the job.
	ListForJob(ctx context.Context, userID string, jobID int64) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, userID string, applicationID int64, status string) error
}
