package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.UserProfile) error {
	return m.Called(ctx, user, profile).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockProfileRepo) GetEmployerByProfileID(ctx context.Context, profileID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockProfileRepo) GetJobSeekerByProfileID(ctx context.Context, profileID int64) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockProfileRepo) CreateEmployer(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) CreateJobSeeker(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) UpdateAll(ctx context.Context, update *domain.ProfileUpdate) error {
	return m.Called(ctx, update).Error(0)
}
func (m *MockProfileRepo) CountEmployers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockProfileRepo) CountJobSeekers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter *domain.JobSearchFilter, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var jobs []domain.JobWithCompany
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.JobWithCompany)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByEmployer(ctx context.Context, employerProfileID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerProfileID, limit, offset)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) ToggleActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockJobRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.JobCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobCategory), args.Error(1)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.JobCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobCategory), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	args := m.Called(ctx, jobID, seekerProfileID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchBySeeker(ctx context.Context, seekerProfileID int64, limit, offset int) ([]domain.JobApplication, int64, error) {
	args := m.Called(ctx, seekerProfileID, limit, offset)
	var apps []domain.JobApplication
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.JobApplication)
	}
	return apps, args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Save(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	args := m.Called(ctx, jobID, seekerProfileID)
	return args.Bool(0), args.Error(1)
}
func (m *MockSavedJobRepo) Delete(ctx context.Context, jobID, seekerProfileID int64) error {
	return m.Called(ctx, jobID, seekerProfileID).Error(0)
}
func (m *MockSavedJobRepo) Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	args := m.Called(ctx, jobID, seekerProfileID)
	return args.Bool(0), args.Error(1)
}
func (m *MockSavedJobRepo) FetchBySeeker(ctx context.Context, seekerProfileID int64, limit, offset int) ([]domain.SavedJob, int64, error) {
	args := m.Called(ctx, seekerProfileID, limit, offset)
	var saved []domain.SavedJob
	if args.Get(0) != nil {
		saved = args.Get(0).([]domain.SavedJob)
	}
	return saved, args.Get(1).(int64), args.Error(2)
}

type MockPasswordResetRepo struct {
	mock.Mock
}

func (m *MockPasswordResetRepo) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockPasswordResetRepo) GetValid(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetToken), args.Error(1)
}
func (m *MockPasswordResetRepo) MarkUsed(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// Shared fixtures

func employerProfile(userID string) *domain.UserProfile {
	return &domain.UserProfile{ID: 1, UserID: userID, Role: domain.RoleEmployer}
}

func seekerProfile(userID string) *domain.UserProfile {
	return &domain.UserProfile{ID: 2, UserID: userID, Role: domain.RoleJobSeeker}
}
