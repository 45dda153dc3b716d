package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/usecases"
)

func TestMedicineUsecase_Create(t *testing.T) {
	userRepo := new(MockUserRepository)
	medicineRepo := new(MockMedicineRepository)
	uc := usecases.NewMedicineUsecase(medicineRepo, userRepo)

	doctor := &entities.User{ID: uuid.New(), Role: entities.UserRoleDoctor}
	userRepo.On("GetByID", context.Background(), doctor.ID).Return(doctor, nil).Once()
	medicineRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Medicine")).Return(nil).Once()

	medicine, err := uc.Create(context.Background(), doctor.ID, &entities.CreateMedicineInput{
		Name:      "Ibuprofen",
		Dosage:    "400mg",
		Frequency: "3x daily",
		Duration:  "5 days",
	})
	assert.NoError(t, err)
	assert.True(t, medicine.IsActive)
	assert.Equal(t, doctor.ID, medicine.DoctorID)
}

func TestMedicineUsecase_Create_NonDoctorForbidden(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewMedicineUsecase(new(MockMedicineRepository), userRepo)

	patient := &entities.User{ID: uuid.New(), Role: entities.UserRolePatient}
	userRepo.On("GetByID", context.Background(), patient.ID).Return(patient, nil).Once()

	_, err := uc.Create(context.Background(), patient.ID, &entities.CreateMedicineInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMedicineUsecase_Update_OwnerOnly(t *testing.T) {
	userRepo := new(MockUserRepository)
	medicineRepo := new(MockMedicineRepository)
	uc := usecases.NewMedicineUsecase(medicineRepo, userRepo)

	owner := &entities.User{ID: uuid.New(), Role: entities.UserRoleDoctor}
	other := &entities.User{ID: uuid.New(), Role: entities.UserRoleDoctor}
	medicine := &entities.Medicine{ID: uuid.New(), Name: "Old name", DoctorID: owner.ID, IsActive: true}

	medicineRepo.On("GetByID", context.Background(), medicine.ID).Return(medicine, nil).Twice()

	userRepo.On("GetByID", context.Background(), other.ID).Return(other, nil).Once()
	_, err := uc.Update(context.Background(), other.ID, medicine.ID, &entities.CreateMedicineInput{Name: "New name"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, "You can only manage your own medicines", err.Error())

	userRepo.On("GetByID", context.Background(), owner.ID).Return(owner, nil).Once()
	medicineRepo.On("Update", context.Background(), medicine).Return(nil).Once()
	updated, err := uc.Update(context.Background(), owner.ID, medicine.ID, &entities.CreateMedicineInput{Name: "New name"})
	assert.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
}

func TestMedicineUsecase_SetActive(t *testing.T) {
	userRepo := new(MockUserRepository)
	medicineRepo := new(MockMedicineRepository)
	uc := usecases.NewMedicineUsecase(medicineRepo, userRepo)

	doctor := &entities.User{ID: uuid.New(), Role: entities.UserRoleDoctor}
	medicine := &entities.Medicine{ID: uuid.New(), DoctorID: doctor.ID, IsActive: true}

	userRepo.On("GetByID", context.Background(), doctor.ID).Return(doctor, nil).Once()
	medicineRepo.On("GetByID", context.Background(), medicine.ID).Return(medicine, nil).Once()
	medicineRepo.On("Update", context.Background(), medicine).Return(nil).Once()

	updated, err := uc.SetActive(context.Background(), doctor.ID, medicine.ID, false)
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestMedicineUsecase_Get_AnyRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	medicineRepo := new(MockMedicineRepository)
	uc := usecases.NewMedicineUsecase(medicineRepo, userRepo)

	ngo := &entities.User{ID: uuid.New(), Role: entities.UserRoleNGO}
	medicine := &entities.Medicine{ID: uuid.New(), DoctorID: uuid.New()}

	userRepo.On("GetByID", context.Background(), ngo.ID).Return(ngo, nil).Once()
	medicineRepo.On("GetByID", context.Background(), medicine.ID).Return(medicine, nil).Once()

	got, err := uc.Get(context.Background(), ngo.ID, medicine.ID)
	assert.NoError(t, err)
	assert.Equal(t, medicine.ID, got.ID)
}
