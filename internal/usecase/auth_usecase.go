package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	resetRepo domain.PasswordResetRepository
	gate      domain.AccessGate
	mailer    *email.EmailService
	validate  *validator.Validate
	cfg       *config.Config
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	resetRepo domain.PasswordResetRepository,
	gate domain.AccessGate,
	mailer *email.EmailService,
	validate *validator.Validate,
	cfg *config.Config,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		gate:      gate,
		mailer:    mailer,
		validate:  validate,
		cfg:       cfg,
	}
}

// Register creates the identity and its role-tagged profile atomically and
// auto-authenticates the caller, routing them to the completion step that
// matches the chosen role.
func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if !input.Role.IsValid() {
		return nil, apperror.BadRequest("Role must be employer or job_seeker")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	}
	profile := &domain.UserProfile{
		Role:     input.Role,
		Phone:    input.Phone,
		Location: input.Location,
	}

	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperror.Conflict("Username or email is already taken")
		}
		return nil, apperror.Internal(err)
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{
		User:    user,
		Profile: profile,
		Token:   token,
		Next:    profile.Role.CompletionPath(),
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := &domain.AuthResult{User: user, Token: token}

	// Route callers with an unfinished profile back to the completion step
	decision, err := u.gate.Check(ctx, user.ID, domain.RoleAny)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	result.Profile = decision.Profile
	if !decision.Allowed {
		result.Next = decision.CompletionPath()
	}

	return result, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset mails a single-use token. An unknown address is
// treated as success so the endpoint does not leak account existence.
func (u *authUsecase) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := u.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Log.Info("password reset requested for unknown email")
			return nil
		}
		return apperror.Internal(err)
	}

	if !u.mailer.IsConfigured() {
		return apperror.New(503, "Password reset is temporarily unavailable", nil)
	}

	token := &domain.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(u.cfg.ResetTokTTL),
	}
	if err := u.resetRepo.Create(ctx, token); err != nil {
		return apperror.Internal(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", u.cfg.FrontendURL, token.Token)
	if err := u.mailer.SendPasswordResetEmail(user.Email, email.PasswordResetEmailData{
		Username: user.Username,
		ResetURL: resetURL,
	}); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) ValidateResetToken(ctx context.Context, token string) error {
	_, err := u.resetRepo.GetValid(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Reset link is invalid or has expired")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	reset, err := u.resetRepo.GetValid(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Reset link is invalid or has expired")
		}
		return apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return apperror.Internal(err)
	}
	if err := u.resetRepo.MarkUsed(ctx, token); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.cfg.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
}
