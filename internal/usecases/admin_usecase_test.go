package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/usecases"
)

type adminFixture struct {
	userRepo         *MockUserRepository
	verificationRepo *MockVerificationRepository
	caseRepo         *MockCaseRepository
	poolRepo         *MockPoolRepository
	medicineRepo     *MockMedicineRepository
	prescriptionRepo *MockPrescriptionRepository
	uc               *usecases.AdminUsecase
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		userRepo:         new(MockUserRepository),
		verificationRepo: new(MockVerificationRepository),
		caseRepo:         new(MockCaseRepository),
		poolRepo:         new(MockPoolRepository),
		medicineRepo:     new(MockMedicineRepository),
		prescriptionRepo: new(MockPrescriptionRepository),
	}
	f.uc = usecases.NewAdminUsecase(f.userRepo, f.verificationRepo, f.caseRepo, f.poolRepo, f.medicineRepo, f.prescriptionRepo)
	return f
}

func TestAdminUsecase_ListDoctors_AdminOnly(t *testing.T) {
	f := newAdminFixture()

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	f.userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	f.userRepo.On("ListByRole", context.Background(), entities.UserRoleDoctor).Return([]*entities.User{}, nil).Once()

	_, err := f.uc.ListDoctors(context.Background(), admin.ID)
	assert.NoError(t, err)

	doctor := &entities.User{ID: uuid.New(), Role: entities.UserRoleDoctor}
	f.userRepo.On("GetByID", context.Background(), doctor.ID).Return(doctor, nil).Once()
	_, err = f.uc.ListDoctors(context.Background(), doctor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminUsecase_GetUserStats_DoctorCounts(t *testing.T) {
	f := newAdminFixture()

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	doctor := &entities.User{
		ID:    uuid.New(),
		Name:  "Dr. A",
		Email: "a@clinic.org",
		Role:  entities.UserRoleDoctor,
	}

	f.userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	f.userRepo.On("GetByID", context.Background(), doctor.ID).Return(doctor, nil).Once()
	f.prescriptionRepo.On("CountByDoctor", context.Background(), doctor.ID).Return(int64(12), nil).Once()
	f.medicineRepo.On("CountByDoctor", context.Background(), doctor.ID).Return(int64(4), nil).Once()

	stats, err := f.uc.GetUserStats(context.Background(), admin.ID, doctor.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalPrescriptions)
	assert.Equal(t, int64(4), stats.TotalMedicines)
	assert.Equal(t, doctor.Email, stats.Email)
}

func TestAdminUsecase_GetUserStats_PatientHasNoCounts(t *testing.T) {
	f := newAdminFixture()

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	patient := &entities.User{ID: uuid.New(), Role: entities.UserRolePatient}

	f.userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	f.userRepo.On("GetByID", context.Background(), patient.ID).Return(patient, nil).Once()

	stats, err := f.uc.GetUserStats(context.Background(), admin.ID, patient.ID)
	assert.NoError(t, err)
	assert.Zero(t, stats.TotalPrescriptions)
	f.prescriptionRepo.AssertNotCalled(t, "CountByDoctor", context.Background(), patient.ID)
}

func TestAdminUsecase_SystemOverview(t *testing.T) {
	f := newAdminFixture()

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	f.userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	f.userRepo.On("CountByRole", context.Background(), entities.UserRoleDoctor).Return(int64(5), nil).Once()
	f.userRepo.On("CountByRole", context.Background(), entities.UserRolePatient).Return(int64(40), nil).Once()
	f.userRepo.On("CountByRole", context.Background(), entities.UserRoleNGO).Return(int64(3), nil).Once()
	f.userRepo.On("CountByRoleAndStatus", context.Background(), entities.UserRoleDoctor, entities.VerificationApproved).Return(int64(2), nil).Once()
	f.verificationRepo.On("ListByStatus", context.Background(), entities.VerificationPending).
		Return([]*entities.VerificationRequest{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()
	f.caseRepo.On("Count", context.Background()).Return(int64(17), nil).Once()
	f.poolRepo.On("Count", context.Background()).Return(int64(9), nil).Once()

	overview, err := f.uc.SystemOverview(context.Background(), admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), overview.TotalDoctors)
	assert.Equal(t, int64(40), overview.TotalPatients)
	assert.Equal(t, int64(3), overview.TotalNGOs)
	assert.Equal(t, int64(2), overview.VerifiedDoctors)
	assert.Equal(t, int64(2), overview.PendingVerifications)
	assert.Equal(t, int64(17), overview.TotalCases)
	assert.Equal(t, int64(9), overview.TotalPools)
}
