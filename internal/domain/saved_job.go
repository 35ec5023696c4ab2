package domain

import (
	"context"
	"time"
)

// SavedJob bookmarks a job for a seeker. One entry per (job, seeker) pair.
type SavedJob struct {
	ID                 int64     `json:"id"`
	JobID              int64     `json:"job_id"`
	JobSeekerProfileID int64     `json:"jobseeker_profile_id"`
	SavedAt            time.Time `json:"saved_at"`

	// Joined job data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Location    *string `json:"location,omitempty"`
	JobIsActive *bool   `json:"job_is_active,omitempty"`
}

type SavedJobRepository interface {
	// Save upserts the bookmark. Returns created=false when the pair
	// already existed (ON CONFLICT DO NOTHING).
	Save(ctx context.Context, jobID, seekerProfileID int64) (bool, error)
	// Delete removes the bookmark; ErrNotFound when none existed.
	Delete(ctx context.Context, jobID, seekerProfileID int64) error
	Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error)
	FetchBySeeker(ctx context.Context, seekerProfileID int64, limit, offset int) ([]SavedJob, int64, error)
}

type SavedJobUsecase interface {
	// Save returns alreadySaved=true on repeat calls instead of erroring.
	Save(ctx context.Context, userID string, jobID int64) (bool, error)
	Unsave(ctx context.Context, userID string, jobID int64) error
	ListMine(ctx context.Context, userID string, page int) ([]SavedJob, int64, error)
}
