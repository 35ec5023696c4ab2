package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		ResetTokTTL: time.Hour,
		FrontendURL: "http://localhost:3000",
		PageSize:    10,
	}
}

func newAuthUC(userRepo *MockUserRepo, resetRepo *MockPasswordResetRepo, profileRepo *MockProfileRepo) domain.AuthUsecase {
	cfg := testConfig()
	validate := validator.New()
	validation.RegisterValidators(validate)
	gate := usecase.NewAccessGate(profileRepo)
	return usecase.NewAuthUsecase(userRepo, resetRepo, gate, email.NewEmailService(cfg), validate, cfg)
}

func validRegistration(role domain.Role) *domain.RegisterInput {
	return &domain.RegisterInput{
		Username:  "jane_doe",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "supersecret1",
		Role:      role,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with role-tagged profile and routes to completion", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("CreateWithProfile", ctx, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.UserProfile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*domain.User)
				profile := args.Get(2).(*domain.UserProfile)
				assert.NotEmpty(t, user.ID)
				assert.NotEqual(t, "supersecret1", user.PasswordHash)
				assert.Equal(t, domain.RoleEmployer, profile.Role)
			})

		uc := newAuthUC(userRepo, new(MockPasswordResetRepo), new(MockProfileRepo))
		result, err := uc.Register(ctx, validRegistration(domain.RoleEmployer))

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "/v1/profile/employer", result.Next)
	})

	t.Run("job seeker is routed to the job seeker completion step", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).Return(nil)

		uc := newAuthUC(userRepo, new(MockPasswordResetRepo), new(MockProfileRepo))
		result, err := uc.Register(ctx, validRegistration(domain.RoleJobSeeker))

		assert.NoError(t, err)
		assert.Equal(t, "/v1/profile/jobseeker", result.Next)
	})

	t.Run("duplicate username or email is a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).
			Return(domain.ErrAlreadyExists)

		uc := newAuthUC(userRepo, new(MockPasswordResetRepo), new(MockProfileRepo))
		_, err := uc.Register(ctx, validRegistration(domain.RoleEmployer))

		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("rejects an invalid role", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo), new(MockPasswordResetRepo), new(MockProfileRepo))
		_, err := uc.Register(ctx, validRegistration("admin"))
		assert.Error(t, err)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		input := validRegistration(domain.RoleEmployer)
		input.Password = "short"

		uc := newAuthUC(new(MockUserRepo), new(MockPasswordResetRepo), new(MockProfileRepo))
		_, err := uc.Register(ctx, input)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret1"), bcrypt.MinCost)
	user := &domain.User{ID: "u1", Username: "jane_doe", PasswordHash: string(hash)}

	t.Run("unknown username and wrong password produce the same error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByUsername", ctx, "jane_doe").Return(user, nil)

		uc := newAuthUC(userRepo, new(MockPasswordResetRepo), new(MockProfileRepo))

		_, err1 := uc.Login(ctx, "ghost", "whatever")
		_, err2 := uc.Login(ctx, "jane_doe", "wrongpassword")

		assert.Error(t, err1)
		assert.Error(t, err2)
		assert.Equal(t, err1.Error(), err2.Error())
	})

	t.Run("incomplete profile logs in but carries the completion hint", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "jane_doe").Return(user, nil)

		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", ctx, "u1").Return(employerProfile("u1"), nil)
		profileRepo.On("GetEmployerByProfileID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		uc := newAuthUC(userRepo, new(MockPasswordResetRepo), profileRepo)
		result, err := uc.Login(ctx, "jane_doe", "supersecret1")

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "/v1/profile/employer", result.Next)
	})

	t.Run("complete profile has no next step", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "jane_doe").Return(user, nil)

		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", ctx, "u1").Return(employerProfile("u1"), nil)
		profileRepo.On("GetEmployerByProfileID", ctx, int64(1)).
			Return(&domain.EmployerProfile{ID: 5, UserProfileID: 1}, nil)

		uc := newAuthUC(userRepo, new(MockPasswordResetRepo), profileRepo)
		result, err := uc.Login(ctx, "jane_doe", "supersecret1")

		assert.NoError(t, err)
		assert.Empty(t, result.Next)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email succeeds silently", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		resetRepo := new(MockPasswordResetRepo)
		uc := newAuthUC(userRepo, resetRepo, new(MockProfileRepo))

		err := uc.RequestPasswordReset(ctx, "ghost@example.com")

		assert.NoError(t, err)
		resetRepo.AssertNotCalled(t, "Create")
	})

	t.Run("expired or used token is rejected", func(t *testing.T) {
		resetRepo := new(MockPasswordResetRepo)
		resetRepo.On("GetValid", ctx, "stale-token").Return(nil, domain.ErrNotFound)

		uc := newAuthUC(new(MockUserRepo), resetRepo, new(MockProfileRepo))
		err := uc.ValidateResetToken(ctx, "stale-token")

		assert.Error(t, err)
	})

	t.Run("reset stores the new hash and consumes the token", func(t *testing.T) {
		reset := &domain.PasswordResetToken{Token: "tok", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

		resetRepo := new(MockPasswordResetRepo)
		resetRepo.On("GetValid", ctx, "tok").Return(reset, nil)
		resetRepo.On("MarkUsed", ctx, "tok").Return(nil)

		userRepo := new(MockUserRepo)
		userRepo.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil).
			Run(func(args mock.Arguments) {
				storedHash := args.String(2)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newpassword1")))
			})

		uc := newAuthUC(userRepo, resetRepo, new(MockProfileRepo))
		err := uc.ResetPassword(ctx, "tok", "newpassword1")

		assert.NoError(t, err)
		resetRepo.AssertCalled(t, "MarkUsed", ctx, "tok")
	})
}
