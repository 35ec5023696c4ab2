package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationUC(appRepo *MockApplicationRepo, jobRepo *MockJobRepo, profileRepo *MockProfileRepo) domain.ApplicationUsecase {
	gate := usecase.NewAccessGate(profileRepo)
	return usecase.NewApplicationUsecase(appRepo, jobRepo, gate, testConfig())
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	activeJob := &domain.Job{ID: 10, EmployerProfileID: 5, IsActive: true}

	t.Run("submits a pending application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		appRepo.On("Exists", ctx, int64(10), int64(7)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)

		app, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 10, "Hi there")

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, int64(7), app.JobSeekerProfileID)
	})

	t.Run("repeat application is a conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		appRepo.On("Exists", ctx, int64(10), int64(7)).Return(true, nil)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 10, "")

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("concurrent duplicate loses to the unique constraint", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		// Pre-check races past a concurrent insert
		appRepo.On("Exists", ctx, int64(10), int64(7)).Return(false, nil)
		appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyExists)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 10, "")

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("inactive job does not accept applications", func(t *testing.T) {
		inactive := &domain.Job{ID: 11, EmployerProfileID: 5, IsActive: false}

		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(11)).Return(inactive, nil)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 11, "")

		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("deadline in the past blocks the application", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		expired := &domain.Job{ID: 12, EmployerProfileID: 5, IsActive: true, ApplicationDeadline: &past}

		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(12)).Return(expired, nil)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 12, "")

		assert.Error(t, err)
	})

	t.Run("employer cannot apply", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeEmployer(profileRepo, "u1", 5)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 10, "")

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("incomplete job seeker is routed to completion", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", ctx, "u1").Return(seekerProfile("u1"), nil)
		profileRepo.On("GetJobSeekerByProfileID", ctx, int64(2)).Return(nil, domain.ErrNotFound)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).Apply(ctx, "u1", 10, "")

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, "/v1/profile/jobseeker", appErr.Next)
	})
}

func TestListForJob(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 10, EmployerProfileID: 5}

	t.Run("owner sees the applications", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeEmployer(profileRepo, "owner", 5)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		appRepo.On("FetchByJobID", ctx, int64(10)).
			Return([]domain.JobApplication{{ID: 1, JobID: 10}}, nil)

		apps, err := newApplicationUC(appRepo, jobRepo, profileRepo).ListForJob(ctx, "owner", 10)

		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("another employer is refused", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeEmployer(profileRepo, "intruder", 99)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)

		_, err := newApplicationUC(appRepo, jobRepo, profileRepo).ListForJob(ctx, "intruder", 10)

		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "FetchByJobID")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 10, EmployerProfileID: 5}
	app := &domain.JobApplication{ID: 3, JobID: 10, Status: domain.ApplicationStatusPending}

	t.Run("owner moves an application forward", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeEmployer(profileRepo, "owner", 5)
		appRepo.On("GetByID", ctx, int64(3)).Return(app, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusInterview).Return(nil)

		err := newApplicationUC(appRepo, jobRepo, profileRepo).UpdateStatus(ctx, "owner", 3, domain.ApplicationStatusInterview)

		assert.NoError(t, err)
	})

	t.Run("pending is not a settable status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)

		err := newApplicationUC(appRepo, new(MockJobRepo), new(MockProfileRepo)).
			UpdateStatus(ctx, "owner", 3, domain.ApplicationStatusPending)

		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("non-owner cannot change status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeEmployer(profileRepo, "intruder", 99)
		appRepo.On("GetByID", ctx, int64(3)).Return(app, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)

		err := newApplicationUC(appRepo, jobRepo, profileRepo).UpdateStatus(ctx, "intruder", 3, domain.ApplicationStatusAccepted)

		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})
}
