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

// PrescriptionUsecase handles issuing and claiming prescriptions
type PrescriptionUsecase struct {
	prescriptionRepo repositories.PrescriptionRepository
	medicineRepo     repositories.MedicineRepository
	userRepo         repositories.UserRepository
}

// NewPrescriptionUsecase creates a new prescription usecase
func NewPrescriptionUsecase(
	prescriptionRepo repositories.PrescriptionRepository,
	medicineRepo repositories.MedicineRepository,
	userRepo repositories.UserRepository,
) *PrescriptionUsecase {
	return &PrescriptionUsecase{
		prescriptionRepo: prescriptionRepo,
		medicineRepo:     medicineRepo,
		userRepo:         userRepo,
	}
}

// Create issues a prescription. Every medicine line must reference an active
// medicine owned by the calling doctor.
func (u *PrescriptionUsecase) Create(ctx context.Context, callerID uuid.UUID, input *entities.CreatePrescriptionInput) (*entities.Prescription, error) {
	doctor, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor)
	if err != nil {
		return nil, err
	}

	for _, line := range input.Medicines {
		medicine, err := u.medicineRepo.GetByID(ctx, line.MedicineID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("Medicine not found: " + line.MedicineID.String())
			}
			return nil, err
		}
		if medicine.DoctorID != doctor.ID {
			return nil, domainerrors.Forbidden("You can only prescribe your own medicines")
		}
		if !medicine.IsActive {
			return nil, domainerrors.InvalidState("Medicine is not active: " + medicine.Name)
		}
	}

	prescription := &entities.Prescription{
		ID:              utils.GenerateUUIDv7(),
		Code:            utils.GeneratePrescriptionCode(),
		DoctorID:        doctor.ID,
		PatientName:     input.PatientName,
		PatientContact:  input.PatientContact,
		Medicines:       input.Medicines,
		AdditionalNotes: input.AdditionalNotes,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

// Claim hands a prescription to the calling patient. The code and the contact
// the doctor recorded must both match, and a prescription can be claimed only
// once.
func (u *PrescriptionUsecase) Claim(ctx context.Context, callerID uuid.UUID, input *entities.ClaimPrescriptionInput) (*entities.Prescription, error) {
	patient, err := authorize(ctx, u.userRepo, callerID, entities.UserRolePatient)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.GetByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Invalid prescription code")
		}
		return nil, err
	}

	if prescription.PatientContact != input.PatientContact {
		return nil, domainerrors.NotFound("Invalid prescription code")
	}
	if prescription.ClaimedBy != nil {
		return nil, domainerrors.Conflict("Prescription has already been claimed")
	}

	if err := u.prescriptionRepo.MarkAccessed(ctx, prescription.ID, patient.ID); err != nil {
		return nil, err
	}

	return u.prescriptionRepo.GetByID(ctx, prescription.ID)
}

// Get returns one prescription, visible to the issuing doctor, the claiming
// patient and admins.
func (u *PrescriptionUsecase) Get(ctx context.Context, callerID uuid.UUID, prescriptionID uuid.UUID) (*entities.Prescription, error) {
	caller, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.GetByID(ctx, prescriptionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Prescription not found")
		}
		return nil, err
	}

	switch caller.Role {
	case entities.UserRoleAdmin:
		return prescription, nil
	case entities.UserRoleDoctor:
		if prescription.DoctorID != caller.ID {
			return nil, domainerrors.Forbidden("You can only view your own prescriptions")
		}
		return prescription, nil
	default:
		if prescription.ClaimedBy == nil || *prescription.ClaimedBy != caller.ID {
			return nil, domainerrors.Forbidden("You can only view prescriptions you have claimed")
		}
		return prescription, nil
	}
}

// ListMine returns the calling doctor's issued prescriptions
func (u *PrescriptionUsecase) ListMine(ctx context.Context, callerID uuid.UUID) ([]*entities.Prescription, error) {
	doctor, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor)
	if err != nil {
		return nil, err
	}
	return u.prescriptionRepo.ListByDoctor(ctx, doctor.ID)
}
