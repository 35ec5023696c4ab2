package domain

import "context"

// DenyReason tags why the access gate refused an operation.
type DenyReason string

const (
	DenyProfileMissing    DenyReason = "profile_missing"
	DenyProfileIncomplete DenyReason = "profile_incomplete"
	DenyWrongRole         DenyReason = "wrong_role"
	DenyNotOwner          DenyReason = "not_owner"
)

// Decision is the gate's tagged result. It carries the resolved profile
// chain so callers never re-query what the gate already looked up.
type Decision struct {
	Allowed bool
	Reason  DenyReason

	Profile   *UserProfile
	Employer  *EmployerProfile
	JobSeeker *JobSeekerProfile
}

// Allow builds an allowing decision around the resolved profile.
func Allow(profile *UserProfile) *Decision {
	return &Decision{Allowed: true, Profile: profile}
}

// Deny builds a refusing decision; profile may be nil for DenyProfileMissing.
func Deny(reason DenyReason, profile *UserProfile) *Decision {
	return &Decision{Allowed: false, Reason: reason, Profile: profile}
}

// CompletionPath returns the completion endpoint for the caller's role, or
// empty when the denial is not about completion.
func (d *Decision) CompletionPath() string {
	if d.Reason != DenyProfileIncomplete || d.Profile == nil {
		return ""
	}
	return d.Profile.Role.CompletionPath()
}

// AccessGate decides whether an authenticated identity may perform an
// operation. It only reads state; callers own the resulting side effects.
type AccessGate interface {
	// Check resolves the identity's profile chain and verifies the role
	// requirement. required may be RoleAny.
	Check(ctx context.Context, userID string, required Role) (*Decision, error)
	// CheckJobOwner additionally verifies that the caller's employer
	// profile owns the job.
	CheckJobOwner(ctx context.Context, userID string, job *Job) (*Decision, error)
}
