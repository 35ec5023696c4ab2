package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func newSavedJobUC(savedRepo *MockSavedJobRepo, jobRepo *MockJobRepo, profileRepo *MockProfileRepo) domain.SavedJobUsecase {
	gate := usecase.NewAccessGate(profileRepo)
	return usecase.NewSavedJobUsecase(savedRepo, jobRepo, gate, testConfig())
}

func TestSaveJob(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 10, EmployerProfileID: 5, IsActive: true}

	t.Run("first save creates the bookmark", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		savedRepo.On("Save", ctx, int64(10), int64(7)).Return(true, nil)

		alreadySaved, err := newSavedJobUC(savedRepo, jobRepo, profileRepo).Save(ctx, "u1", 10)

		assert.NoError(t, err)
		assert.False(t, alreadySaved)
	})

	t.Run("second save is a no-op, not an error", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		savedRepo.On("Save", ctx, int64(10), int64(7)).Return(false, nil)

		alreadySaved, err := newSavedJobUC(savedRepo, jobRepo, profileRepo).Save(ctx, "u1", 10)

		assert.NoError(t, err)
		assert.True(t, alreadySaved)
	})

	t.Run("saving a missing job is not found", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		jobRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := newSavedJobUC(savedRepo, jobRepo, profileRepo).Save(ctx, "u1", 404)

		assert.Error(t, err)
		savedRepo.AssertNotCalled(t, "Save")
	})

	t.Run("employer cannot save jobs", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		profileRepo := new(MockProfileRepo)
		completeEmployer(profileRepo, "u1", 5)

		_, err := newSavedJobUC(savedRepo, new(MockJobRepo), profileRepo).Save(ctx, "u1", 10)

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestUnsaveJob(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing bookmark", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		savedRepo.On("Delete", ctx, int64(10), int64(7)).Return(nil)

		err := newSavedJobUC(savedRepo, new(MockJobRepo), profileRepo).Unsave(ctx, "u1", 10)

		assert.NoError(t, err)
	})

	t.Run("unsaving a job that was never saved is not found", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		profileRepo := new(MockProfileRepo)
		completeSeeker(profileRepo, "u1", 7)
		savedRepo.On("Delete", ctx, int64(10), int64(7)).Return(domain.ErrNotFound)

		err := newSavedJobUC(savedRepo, new(MockJobRepo), profileRepo).Unsave(ctx, "u1", 10)

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestListSavedJobs(t *testing.T) {
	ctx := context.Background()

	savedRepo := new(MockSavedJobRepo)
	profileRepo := new(MockProfileRepo)
	completeSeeker(profileRepo, "u1", 7)
	savedRepo.On("FetchBySeeker", ctx, int64(7), 10, 0).
		Return([]domain.SavedJob{{ID: 1, JobID: 10}}, int64(1), nil)

	saved, total, err := newSavedJobUC(savedRepo, new(MockJobRepo), profileRepo).ListMine(ctx, "u1", 1)

	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, int64(1), total)
}
