package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	gate        domain.AccessGate
	validate    *validator.Validate
}

func NewProfileUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	gate domain.AccessGate,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		gate:        gate,
		validate:    validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	decision, err := u.gate.Check(ctx, userID, domain.RoleAny)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, denyError(decision)
	}

	return &domain.ProfileView{
		User:      user,
		Profile:   decision.Profile,
		Employer:  decision.Employer,
		JobSeeker: decision.JobSeeker,
	}, nil
}

// CompleteEmployer creates the employer half of the profile exactly once.
// A repeat submission short-circuits to the existing profile.
func (u *profileUsecase) CompleteEmployer(ctx context.Context, userID string, input *domain.EmployerProfileInput) (*domain.EmployerProfile, bool, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, apperror.Forbidden("Please complete your registration first.")
		}
		return nil, false, err
	}
	if profile.Role != domain.RoleEmployer {
		return nil, false, apperror.Forbidden("Only employer accounts can complete an employer profile.")
	}

	if existing, err := u.profileRepo.GetEmployerByProfileID(ctx, profile.ID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, false, apperror.BadRequest(err.Error())
	}

	employer := &domain.EmployerProfile{
		UserProfileID: profile.ID,
		CompanyName:   input.CompanyName,
		Description:   optional(input.Description),
		Website:       optional(input.Website),
		CompanySize:   optional(input.CompanySize),
	}
	if err := u.profileRepo.CreateEmployer(ctx, employer); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a race with a concurrent submission; same outcome.
			existing, gerr := u.profileRepo.GetEmployerByProfileID(ctx, profile.ID)
			if gerr != nil {
				return nil, false, gerr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return employer, true, nil
}

// CompleteJobSeeker mirrors CompleteEmployer for the job seeker role.
func (u *profileUsecase) CompleteJobSeeker(ctx context.Context, userID string, input *domain.JobSeekerProfileInput) (*domain.JobSeekerProfile, bool, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, apperror.Forbidden("Please complete your registration first.")
		}
		return nil, false, err
	}
	if profile.Role != domain.RoleJobSeeker {
		return nil, false, apperror.Forbidden("Only job seeker accounts can complete a job seeker profile.")
	}

	if existing, err := u.profileRepo.GetJobSeekerByProfileID(ctx, profile.ID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, false, apperror.BadRequest(err.Error())
	}

	seeker := &domain.JobSeekerProfile{
		UserProfileID:   profile.ID,
		ResumeURL:       optional(input.ResumeURL),
		Skills:          input.Skills,
		ExperienceYears: input.ExperienceYears,
		Education:       optional(input.Education),
	}
	if err := u.profileRepo.CreateJobSeeker(ctx, seeker); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, gerr := u.profileRepo.GetJobSeekerByProfileID(ctx, profile.ID)
			if gerr != nil {
				return nil, false, gerr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return seeker, true, nil
}

// UpdateProfile applies identity, profile, and role-specific changes as a
// single logical update: every section validates before anything commits.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, input *domain.ProfileEditInput) (*domain.ProfileView, error) {
	decision, err := u.gate.Check(ctx, userID, domain.RoleAny)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, denyError(decision)
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email

	profile := decision.Profile
	profile.Phone = input.Phone
	profile.Location = input.Location

	update := &domain.ProfileUpdate{User: user, Profile: profile}

	switch profile.Role {
	case domain.RoleEmployer:
		if input.Employer == nil {
			return nil, apperror.BadRequest("Employer fields are required")
		}
		if err := u.validate.Struct(input.Employer); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		employer := decision.Employer
		employer.CompanyName = input.Employer.CompanyName
		employer.Description = optional(input.Employer.Description)
		employer.Website = optional(input.Employer.Website)
		employer.CompanySize = optional(input.Employer.CompanySize)
		update.Employer = employer

	case domain.RoleJobSeeker:
		if input.JobSeeker == nil {
			return nil, apperror.BadRequest("Job seeker fields are required")
		}
		if err := u.validate.Struct(input.JobSeeker); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		seeker := decision.JobSeeker
		seeker.ResumeURL = optional(input.JobSeeker.ResumeURL)
		seeker.Skills = input.JobSeeker.Skills
		seeker.ExperienceYears = input.JobSeeker.ExperienceYears
		seeker.Education = optional(input.JobSeeker.Education)
		update.JobSeeker = seeker
	}

	if err := u.profileRepo.UpdateAll(ctx, update); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperror.Conflict("Email is already taken")
		}
		return nil, err
	}

	return &domain.ProfileView{
		User:      user,
		Profile:   profile,
		Employer:  update.Employer,
		JobSeeker: update.JobSeeker,
	}, nil
}

// optional converts an empty string to a nil pointer for nullable columns
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
