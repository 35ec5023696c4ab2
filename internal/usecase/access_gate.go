package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type accessGate struct {
	profileRepo domain.ProfileRepository
}

// NewAccessGate builds the reusable access-control gate. It is purely a
// reader: every job-management and application operation consults it and
// the caller performs whatever side effect the decision implies.
func NewAccessGate(profileRepo domain.ProfileRepository) domain.AccessGate {
	return &accessGate{profileRepo: profileRepo}
}

func (g *accessGate) Check(ctx context.Context, userID string, required domain.Role) (*domain.Decision, error) {
	profile, err := g.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Registration always creates a profile, so this is defensive.
			return domain.Deny(domain.DenyProfileMissing, nil), nil
		}
		return nil, err
	}

	if required != domain.RoleAny && profile.Role != required {
		return domain.Deny(domain.DenyWrongRole, profile), nil
	}

	switch profile.Role {
	case domain.RoleEmployer:
		employer, err := g.profileRepo.GetEmployerByProfileID(ctx, profile.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Deny(domain.DenyProfileIncomplete, profile), nil
			}
			return nil, err
		}
		decision := domain.Allow(profile)
		decision.Employer = employer
		return decision, nil

	case domain.RoleJobSeeker:
		seeker, err := g.profileRepo.GetJobSeekerByProfileID(ctx, profile.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Deny(domain.DenyProfileIncomplete, profile), nil
			}
			return nil, err
		}
		decision := domain.Allow(profile)
		decision.JobSeeker = seeker
		return decision, nil
	}

	return domain.Deny(domain.DenyWrongRole, profile), nil
}

func (g *accessGate) CheckJobOwner(ctx context.Context, userID string, job *domain.Job) (*domain.Decision, error) {
	decision, err := g.Check(ctx, userID, domain.RoleEmployer)
	if err != nil || !decision.Allowed {
		return decision, err
	}

	if decision.Employer.ID != job.EmployerProfileID {
		denied := domain.Deny(domain.DenyNotOwner, decision.Profile)
		denied.Employer = decision.Employer
		return denied, nil
	}
	return decision, nil
}

// denyError translates a gate refusal into the user-facing error, carrying
// the completion-step hint where one applies.
func denyError(d *domain.Decision) *apperror.AppError {
	switch d.Reason {
	case domain.DenyProfileMissing:
		return apperror.Forbidden("Please complete your registration first.")
	case domain.DenyProfileIncomplete:
		return apperror.Forbidden("Please complete your profile first.").WithNext(d.CompletionPath())
	case domain.DenyWrongRole:
		return apperror.Forbidden("Your account type cannot perform this action.")
	case domain.DenyNotOwner:
		return apperror.Forbidden("You can only manage your own jobs.")
	}
	return apperror.Forbidden("Access denied.")
}
