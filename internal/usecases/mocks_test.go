package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"medseal.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, requestID *uuid.UUID) error {
	args := m.Called(ctx, id, status, requestID)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role entities.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRoleAndStatus(ctx context.Context, role entities.UserRole, status entities.VerificationStatus) (int64, error) {
	args := m.Called(ctx, role, status)
	return args.Get(0).(int64), args.Error(1)
}

// Mock SystemFlagRepository
type MockSystemFlagRepository struct {
	mock.Mock
}

func (m *MockSystemFlagRepository) AdminExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSystemFlagRepository) SetAdminExists(ctx context.Context, exists bool) error {
	args := m.Called(ctx, exists)
	return args.Error(0)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, request *entities.VerificationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) Update(ctx context.Context, request *entities.VerificationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockVerificationRepository) List(ctx context.Context) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) ListByStatus(ctx context.Context, status entities.VerificationStatus) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) ListByType(ctx context.Context, verificationType entities.VerificationType) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, verificationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

// Mock CaseRepository
type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) Create(ctx context.Context, patientCase *entities.PatientCase) error {
	args := m.Called(ctx, patientCase)
	return args.Error(0)
}

func (m *MockCaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PatientCase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) Update(ctx context.Context, patientCase *entities.PatientCase) error {
	args := m.Called(ctx, patientCase)
	return args.Error(0)
}

func (m *MockCaseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CaseStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCaseRepository) List(ctx context.Context) ([]*entities.PatientCase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) ListByStatus(ctx context.Context, status entities.CaseStatus) ([]*entities.PatientCase, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) ListByStatuses(ctx context.Context, statuses []entities.CaseStatus) ([]*entities.PatientCase, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.PatientCase, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PoolRepository
type MockPoolRepository struct {
	mock.Mock
}

func (m *MockPoolRepository) Create(ctx context.Context, pool *entities.ContributionPool) error {
	args := m.Called(ctx, pool)
	return args.Error(0)
}

func (m *MockPoolRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ContributionPool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContributionPool), args.Error(1)
}

func (m *MockPoolRepository) GetByCaseID(ctx context.Context, caseID uuid.UUID) (*entities.ContributionPool, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContributionPool), args.Error(1)
}

func (m *MockPoolRepository) Update(ctx context.Context, pool *entities.ContributionPool) error {
	args := m.Called(ctx, pool)
	return args.Error(0)
}

func (m *MockPoolRepository) List(ctx context.Context) ([]*entities.ContributionPool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ContributionPool), args.Error(1)
}

func (m *MockPoolRepository) ListActive(ctx context.Context) ([]*entities.ContributionPool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ContributionPool), args.Error(1)
}

func (m *MockPoolRepository) ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entities.ContributionPool, error) {
	args := m.Called(ctx, ngoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ContributionPool), args.Error(1)
}

func (m *MockPoolRepository) ListExpiredActive(ctx context.Context, limit int) ([]*entities.ContributionPool, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ContributionPool), args.Error(1)
}

func (m *MockPoolRepository) Deactivate(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockPoolRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ContributionRepository
type MockContributionRepository struct {
	mock.Mock
}

func (m *MockContributionRepository) Create(ctx context.Context, contribution *entities.Contribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *MockContributionRepository) ListByPool(ctx context.Context, poolID uuid.UUID) ([]*entities.Contribution, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contribution), args.Error(1)
}

func (m *MockContributionRepository) ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]*entities.Contribution, error) {
	args := m.Called(ctx, contributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contribution), args.Error(1)
}

// Mock MedicineRepository
type MockMedicineRepository struct {
	mock.Mock
}

func (m *MockMedicineRepository) Create(ctx context.Context, medicine *entities.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *entities.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) List(ctx context.Context) ([]*entities.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entities.Medicine, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) CountByDoctor(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PrescriptionRepository
type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) Create(ctx context.Context, prescription *entities.Prescription) error {
	args := m.Called(ctx, prescription)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) GetByCode(ctx context.Context, code string) (*entities.Prescription, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) MarkAccessed(ctx context.Context, id uuid.UUID, claimedBy uuid.UUID) error {
	args := m.Called(ctx, id, claimedBy)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entities.Prescription, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) CountByDoctor(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AssistantClient
type MockAssistantClient struct {
	mock.Mock
}

func (m *MockAssistantClient) Complete(ctx context.Context, systemPrompt string, messages []entities.ChatMessage) (string, error) {
	args := m.Called(ctx, systemPrompt, messages)
	return args.String(0), args.Error(1)
}
