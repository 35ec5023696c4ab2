package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAccessGateCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("denies when no profile exists", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.Check(ctx, "u1", domain.RoleEmployer)

		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, domain.DenyProfileMissing, decision.Reason)
	})

	t.Run("denies wrong role before checking completeness", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(seekerProfile("u1"), nil)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.Check(ctx, "u1", domain.RoleEmployer)

		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, domain.DenyWrongRole, decision.Reason)
		repo.AssertNotCalled(t, "GetJobSeekerByProfileID")
	})

	t.Run("denies incomplete employer with completion path", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(employerProfile("u1"), nil)
		repo.On("GetEmployerByProfileID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.Check(ctx, "u1", domain.RoleEmployer)

		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, domain.DenyProfileIncomplete, decision.Reason)
		assert.Equal(t, "/v1/profile/employer", decision.CompletionPath())
	})

	t.Run("allows complete job seeker and attaches the half", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(seekerProfile("u1"), nil)
		repo.On("GetJobSeekerByProfileID", ctx, int64(2)).
			Return(&domain.JobSeekerProfile{ID: 7, UserProfileID: 2}, nil)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.Check(ctx, "u1", domain.RoleJobSeeker)

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.NotNil(t, decision.JobSeeker)
		assert.Equal(t, int64(7), decision.JobSeeker.ID)
	})

	t.Run("RoleAny accepts either role", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(employerProfile("u1"), nil)
		repo.On("GetEmployerByProfileID", ctx, int64(1)).
			Return(&domain.EmployerProfile{ID: 5, UserProfileID: 1}, nil)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.Check(ctx, "u1", domain.RoleAny)

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.NotNil(t, decision.Employer)
	})
}

func TestAccessGateCheckJobOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("denies employer who does not own the job", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(employerProfile("u1"), nil)
		repo.On("GetEmployerByProfileID", ctx, int64(1)).
			Return(&domain.EmployerProfile{ID: 5, UserProfileID: 1}, nil)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.CheckJobOwner(ctx, "u1", &domain.Job{ID: 10, EmployerProfileID: 99})

		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, domain.DenyNotOwner, decision.Reason)
	})

	t.Run("allows the owner", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(employerProfile("u1"), nil)
		repo.On("GetEmployerByProfileID", ctx, int64(1)).
			Return(&domain.EmployerProfile{ID: 5, UserProfileID: 1}, nil)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.CheckJobOwner(ctx, "u1", &domain.Job{ID: 10, EmployerProfileID: 5})

		assert.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("job seeker cannot own jobs", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", ctx, "u1").Return(seekerProfile("u1"), nil)

		gate := usecase.NewAccessGate(repo)
		decision, err := gate.CheckJobOwner(ctx, "u1", &domain.Job{ID: 10, EmployerProfileID: 5})

		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, domain.DenyWrongRole, decision.Reason)
	})
}
