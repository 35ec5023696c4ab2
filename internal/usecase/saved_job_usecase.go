package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedRepo domain.SavedJobRepository
	jobRepo   domain.JobRepository
	gate      domain.AccessGate
	pageSize  int
}

func NewSavedJobUsecase(
	savedRepo domain.SavedJobRepository,
	jobRepo domain.JobRepository,
	gate domain.AccessGate,
	cfg *config.Config,
) domain.SavedJobUsecase {
	return &savedJobUsecase{
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
		gate:      gate,
		pageSize:  cfg.PageSize,
	}
}

// Save bookmarks the job. Saving twice is not an error; the second call
// reports alreadySaved=true and leaves a single bookmark behind.
func (u *savedJobUsecase) Save(ctx context.Context, userID string, jobID int64) (bool, error) {
	decision, err := u.gate.Check(ctx, userID, domain.RoleJobSeeker)
	if err != nil {
		return false, err
	}
	if !decision.Allowed {
		return false, denyError(decision)
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, apperror.NotFound("Job not found")
		}
		return false, err
	}

	created, err := u.savedRepo.Save(ctx, jobID, decision.JobSeeker.ID)
	if err != nil {
		return false, err
	}
	return !created, nil
}

func (u *savedJobUsecase) Unsave(ctx context.Context, userID string, jobID int64) error {
	decision, err := u.gate.Check(ctx, userID, domain.RoleJobSeeker)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return denyError(decision)
	}

	if err := u.savedRepo.Delete(ctx, jobID, decision.JobSeeker.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Saved job not found")
		}
		return err
	}
	return nil
}

func (u *savedJobUsecase) ListMine(ctx context.Context, userID string, page int) ([]domain.SavedJob, int64, error) {
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
	return u.savedRepo.FetchBySeeker(ctx, decision.JobSeeker.ID, u.pageSize, (page-1)*u.pageSize)
}
