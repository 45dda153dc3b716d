package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
	"medseal.backend/pkg/utils"
)

// CaseUsecase handles patient case submission, review and visibility
type CaseUsecase struct {
	caseRepo repositories.CaseRepository
	userRepo repositories.UserRepository
}

// NewCaseUsecase creates a new case usecase
func NewCaseUsecase(caseRepo repositories.CaseRepository, userRepo repositories.UserRepository) *CaseUsecase {
	return &CaseUsecase{caseRepo: caseRepo, userRepo: userRepo}
}

// Submit files a new funding-need case for the calling patient
func (u *CaseUsecase) Submit(ctx context.Context, callerID uuid.UUID, input *entities.SubmitCaseInput) (*entities.PatientCase, error) {
	patient, err := authorize(ctx, u.userRepo, callerID, entities.UserRolePatient)
	if err != nil {
		return nil, err
	}

	patientCase := &entities.PatientCase{
		ID:               utils.GenerateUUIDv7(),
		PatientID:        patient.ID,
		PatientName:      patient.Name,
		PatientContact:   patient.Email,
		Title:            input.Title,
		Description:      input.Description,
		MedicalCondition: input.MedicalCondition,
		RequiredAmount:   input.RequiredAmount,
		Documents:        input.Documents,
		Urgency:          input.Urgency,
		Status:           entities.CaseStatusPending,
	}

	if err := u.caseRepo.Create(ctx, patientCase); err != nil {
		return nil, err
	}
	return patientCase, nil
}

// Review records an admin decision on a case. A funded case is terminal and
// cannot be re-reviewed; any other status may move to any review status, so
// an admin can reopen or close a case without walking every step.
func (u *CaseUsecase) Review(ctx context.Context, callerID uuid.UUID, caseID uuid.UUID, input *entities.ReviewCaseInput) (*entities.PatientCase, error) {
	admin, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	patientCase, err := u.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Case not found")
		}
		return nil, err
	}

	if patientCase.Status == entities.CaseStatusFunded {
		return nil, domainerrors.InvalidState("Funded cases cannot be reviewed")
	}

	patientCase.Status = input.Status
	patientCase.ReviewedAt = null.TimeFrom(nowFunc())
	patientCase.ReviewedBy = &admin.ID
	if input.AdminNotes != "" {
		patientCase.AdminNotes = null.StringFrom(input.AdminNotes)
	}

	if err := u.caseRepo.Update(ctx, patientCase); err != nil {
		return nil, err
	}
	return patientCase, nil
}

// Get returns one case. Admins see everything, patients their own cases, and
// NGOs only cases that cleared review.
func (u *CaseUsecase) Get(ctx context.Context, callerID uuid.UUID, caseID uuid.UUID) (*entities.PatientCase, error) {
	caller, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRolePatient, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	patientCase, err := u.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Case not found")
		}
		return nil, err
	}

	switch caller.Role {
	case entities.UserRoleAdmin:
		return patientCase, nil
	case entities.UserRolePatient:
		if patientCase.PatientID != caller.ID {
			return nil, domainerrors.Forbidden("You can only view your own cases")
		}
		return patientCase, nil
	default:
		if patientCase.Status != entities.CaseStatusApproved && patientCase.Status != entities.CaseStatusFunded {
			return nil, domainerrors.Forbidden("Case is not available")
		}
		return patientCase, nil
	}
}

// List returns the cases the caller may see, per the Get visibility rules
func (u *CaseUsecase) List(ctx context.Context, callerID uuid.UUID) ([]*entities.PatientCase, error) {
	caller, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRolePatient, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case entities.UserRoleAdmin:
		return u.caseRepo.List(ctx)
	case entities.UserRolePatient:
		return u.caseRepo.ListByPatient(ctx, caller.ID)
	default:
		return u.caseRepo.ListByStatuses(ctx, []entities.CaseStatus{
			entities.CaseStatusApproved,
			entities.CaseStatusFunded,
		})
	}
}

// ListPending returns the admin review queue
func (u *CaseUsecase) ListPending(ctx context.Context, callerID uuid.UUID) ([]*entities.PatientCase, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.caseRepo.ListByStatuses(ctx, []entities.CaseStatus{
		entities.CaseStatusPending,
		entities.CaseStatusUnderReview,
	})
}
