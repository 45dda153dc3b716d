package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
	"medseal.backend/pkg/utils"
)

// MedicineUsecase handles a doctor's medicine repository
type MedicineUsecase struct {
	medicineRepo repositories.MedicineRepository
	userRepo     repositories.UserRepository
}

// NewMedicineUsecase creates a new medicine usecase
func NewMedicineUsecase(medicineRepo repositories.MedicineRepository, userRepo repositories.UserRepository) *MedicineUsecase {
	return &MedicineUsecase{medicineRepo: medicineRepo, userRepo: userRepo}
}

// Create adds a medicine owned by the calling doctor
func (u *MedicineUsecase) Create(ctx context.Context, callerID uuid.UUID, input *entities.CreateMedicineInput) (*entities.Medicine, error) {
	doctor, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor)
	if err != nil {
		return nil, err
	}

	medicine := &entities.Medicine{
		ID:          utils.GenerateUUIDv7(),
		Name:        input.Name,
		Dosage:      input.Dosage,
		Frequency:   input.Frequency,
		Duration:    input.Duration,
		SideEffects: input.SideEffects,
		GuideText:   input.GuideText,
		GuideSource: input.GuideSource,
		DoctorID:    doctor.ID,
		IsActive:    true,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// Update rewrites a medicine's fields, owner only
func (u *MedicineUsecase) Update(ctx context.Context, callerID uuid.UUID, medicineID uuid.UUID, input *entities.CreateMedicineInput) (*entities.Medicine, error) {
	doctor, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor)
	if err != nil {
		return nil, err
	}

	medicine, err := u.getOwned(ctx, doctor.ID, medicineID)
	if err != nil {
		return nil, err
	}

	medicine.Name = input.Name
	medicine.Dosage = input.Dosage
	medicine.Frequency = input.Frequency
	medicine.Duration = input.Duration
	medicine.SideEffects = input.SideEffects
	medicine.GuideText = input.GuideText
	medicine.GuideSource = input.GuideSource

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// SetActive toggles whether a medicine can go on new prescriptions
func (u *MedicineUsecase) SetActive(ctx context.Context, callerID uuid.UUID, medicineID uuid.UUID, active bool) (*entities.Medicine, error) {
	doctor, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor)
	if err != nil {
		return nil, err
	}

	medicine, err := u.getOwned(ctx, doctor.ID, medicineID)
	if err != nil {
		return nil, err
	}

	medicine.IsActive = active
	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// Get returns one medicine, visible to any authenticated user
func (u *MedicineUsecase) Get(ctx context.Context, callerID uuid.UUID, medicineID uuid.UUID) (*entities.Medicine, error) {
	if _, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO); err != nil {
		return nil, err
	}

	medicine, err := u.medicineRepo.GetByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Medicine not found")
		}
		return nil, err
	}
	return medicine, nil
}

// ListMine returns the calling doctor's medicines
func (u *MedicineUsecase) ListMine(ctx context.Context, callerID uuid.UUID) ([]*entities.Medicine, error) {
	doctor, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor)
	if err != nil {
		return nil, err
	}
	return u.medicineRepo.ListByDoctor(ctx, doctor.ID)
}

func (u *MedicineUsecase) getOwned(ctx context.Context, doctorID uuid.UUID, medicineID uuid.UUID) (*entities.Medicine, error) {
	medicine, err := u.medicineRepo.GetByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Medicine not found")
		}
		return nil, err
	}
	if medicine.DoctorID != doctorID {
		return nil, domainerrors.Forbidden("You can only manage your own medicines")
	}
	return medicine, nil
}
