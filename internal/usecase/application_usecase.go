package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo  domain.ApplicationRepository
	jobRepo  domain.JobRepository
	gate     domain.AccessGate
	pageSize int
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	gate domain.AccessGate,
	cfg *config.Config,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		gate:     gate,
		pageSize: cfg.PageSize,
	}
}

// Apply submits an application for a complete job seeker. The unique
// constraint on (job, applicant) is the final word on duplicates, so a
// concurrent double submit still resolves to a single Conflict.
func (u *applicationUsecase) Apply(ctx context.Context, userID string, jobID int64, coverLetter string) (*domain.JobApplication, error) {
	decision, err := u.gate.Check(ctx, userID, domain.RoleJobSeeker)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, denyError(decision)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}
	if deadlinePassed(job) {
		return nil, apperror.BadRequest("The application deadline for this job has passed")
	}

	seekerID := decision.JobSeeker.ID
	exists, err := u.appRepo.Exists(ctx, jobID, seekerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.JobApplication{
		JobID:              jobID,
		JobSeekerProfileID: seekerID,
		CoverLetter:        coverLetter,
		Status:             domain.ApplicationStatusPending,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) ListMine(ctx context.Context, userID string, page int) ([]domain.JobApplication, int64, error) {
	decision, err := u.gate.Check(ctx, userID, domain.RoleJobSeeker)
	if err != nil {
		return nil, 0, err
	}
	if !decision.Allowed {
		return nil, 0, denyError(decision)
	}

	if page < 1 {
		page = 1
	}
	return u.appRepo.FetchBySeeker(ctx, decision.JobSeeker.ID, u.pageSize, (page-1)*u.pageSize)
}

func (u *applicationUsecase) ListForJob(ctx context.Context, userID string, jobID int64) ([]domain.JobApplication, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	decision, err := u.gate.CheckJobOwner(ctx, userID, job)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, denyError(decision)
	}

	return u.appRepo.FetchByJobID(ctx, jobID)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	if !domain.ValidApplicationStatusTransition(status) {
		return apperror.BadRequest("Invalid application status")
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return err
	}

	decision, err := u.gate.CheckJobOwner(ctx, userID, job)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return denyError(decision)
	}

	return u.appRepo.UpdateStatus(ctx, applicationID, status)
}
