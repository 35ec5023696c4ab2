package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	categoryRepo domain.CategoryRepository
	appRepo      domain.ApplicationRepository
	savedRepo    domain.SavedJobRepository
	profileRepo  domain.ProfileRepository
	gate         domain.AccessGate
	pageSize     int
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	categoryRepo domain.CategoryRepository,
	appRepo domain.ApplicationRepository,
	savedRepo domain.SavedJobRepository,
	profileRepo domain.ProfileRepository,
	gate domain.AccessGate,
	cfg *config.Config,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		categoryRepo: categoryRepo,
		appRepo:      appRepo,
		savedRepo:    savedRepo,
		profileRepo:  profileRepo,
		gate:         gate,
		pageSize:     cfg.PageSize,
	}
}

// Search runs the filtered listing over active jobs. Out-of-range pages
// clamp to the nearest valid page instead of returning an error.
func (u *jobUsecase) Search(ctx context.Context, filter *domain.JobSearchFilter, page int) (*domain.JobPage, error) {
	if page < 1 {
		page = 1
	}

	jobs, total, err := u.jobRepo.Search(ctx, filter, u.pageSize, (page-1)*u.pageSize)
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 && total > 0 {
		lastPage := int((total + int64(u.pageSize) - 1) / int64(u.pageSize))
		if page > lastPage {
			page = lastPage
			jobs, total, err = u.jobRepo.Search(ctx, filter, u.pageSize, (page-1)*u.pageSize)
			if err != nil {
				return nil, err
			}
		}
	}

	return &domain.JobPage{
		Jobs:     jobs,
		Total:    total,
		Page:     page,
		PageSize: u.pageSize,
	}, nil
}

// GetDetail resolves the job page. Inactive jobs are only visible to the
// employer who owns them; everyone else gets a not-found.
func (u *jobUsecase) GetDetail(ctx context.Context, id int64, viewerID string) (*domain.JobDetail, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	detail := &domain.JobDetail{JobWithCompany: *job}

	var decision *domain.Decision
	if viewerID != "" {
		decision, err = u.gate.Check(ctx, viewerID, domain.RoleAny)
		if err != nil {
			return nil, err
		}
	}

	if !job.IsActive {
		isOwner := decision != nil && decision.Allowed &&
			decision.Employer != nil && decision.Employer.ID == job.EmployerProfileID
		if !isOwner {
			return nil, apperror.NotFound("Job not found")
		}
		return detail, nil
	}

	if decision != nil && decision.Allowed && decision.JobSeeker != nil {
		seekerID := decision.JobSeeker.ID
		applied, err := u.appRepo.Exists(ctx, id, seekerID)
		if err != nil {
			return nil, err
		}
		saved, err := u.savedRepo.Exists(ctx, id, seekerID)
		if err != nil {
			return nil, err
		}
		detail.HasApplied = applied
		detail.IsSaved = saved
		detail.CanApply = !applied && !deadlinePassed(&job.Job)
	}

	return detail, nil
}

func (u *jobUsecase) Create(ctx context.Context, userID string, job *domain.Job) error {
	decision, err := u.gate.Check(ctx, userID, domain.RoleEmployer)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return denyError(decision)
	}

	if appErr := validateJob(job); appErr != nil {
		return appErr
	}
	if appErr := u.checkCategory(ctx, job.CategoryID); appErr != nil {
		return appErr
	}

	job.EmployerProfileID = decision.Employer.ID
	job.IsActive = true
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) Update(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	decision, err := u.gate.CheckJobOwner(ctx, userID, existing)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return denyError(decision)
	}

	if appErr := validateJob(job); appErr != nil {
		return appErr
	}
	if appErr := u.checkCategory(ctx, job.CategoryID); appErr != nil {
		return appErr
	}

	job.EmployerProfileID = existing.EmployerProfileID
	job.IsActive = existing.IsActive
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) Delete(ctx context.Context, userID string, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	decision, err := u.gate.CheckJobOwner(ctx, userID, existing)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return denyError(decision)
	}

	return u.jobRepo.Delete(ctx, id)
}

func (u *jobUsecase) ToggleActive(ctx context.Context, userID string, id int64) (bool, error) {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, apperror.NotFound("Job not found")
		}
		return false, err
	}

	decision, err := u.gate.CheckJobOwner(ctx, userID, existing)
	if err != nil {
		return false, err
	}
	if !decision.Allowed {
		return false, denyError(decision)
	}

	return u.jobRepo.ToggleActive(ctx, id)
}

func (u *jobUsecase) ListByEmployer(ctx context.Context, userID string, page int) ([]domain.Job, int64, error) {
	decision, err := u.gate.Check(ctx, userID, domain.RoleEmployer)
	if err != nil {
		return nil, 0, err
	}
	if !decision.Allowed {
		return nil, 0, denyError(decision)
	}

	if page < 1 {
		page = 1
	}
	return u.jobRepo.FetchByEmployer(ctx, decision.Employer.ID, u.pageSize, (page-1)*u.pageSize)
}

func (u *jobUsecase) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	return u.categoryRepo.List(ctx)
}

func (u *jobUsecase) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	activeJobs, err := u.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	employers, err := u.profileRepo.CountEmployers(ctx)
	if err != nil {
		return nil, err
	}
	seekers, err := u.profileRepo.CountJobSeekers(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.PlatformStats{
		ActiveJobs: activeJobs,
		Employers:  employers,
		JobSeekers: seekers,
	}, nil
}

func (u *jobUsecase) checkCategory(ctx context.Context, categoryID *int64) *apperror.AppError {
	if categoryID == nil {
		return nil
	}
	if _, err := u.categoryRepo.GetByID(ctx, *categoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Unknown job category")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateJob(job *domain.Job) *apperror.AppError {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if !validJobType(job.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if !validExperienceLevel(job.ExperienceLevel) {
		return apperror.BadRequest("Invalid experience level")
	}
	return nil
}

func validJobType(t string) bool {
	switch t {
	case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract,
		domain.JobTypeInternship, domain.JobTypeFreelance:
		return true
	}
	return false
}

func validExperienceLevel(l string) bool {
	switch l {
	case domain.ExperienceEntry, domain.ExperienceMid,
		domain.ExperienceSenior, domain.ExperienceExecutive:
		return true
	}
	return false
}

func deadlinePassed(job *domain.Job) bool {
	return job.ApplicationDeadline != nil && job.ApplicationDeadline.Before(time.Now())
}
