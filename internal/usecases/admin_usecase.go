package usecases

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	"medseal.backend/internal/domain/repositories"
)

// AdminUsecase handles admin analytics and user listings
type AdminUsecase struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	caseRepo         repositories.CaseRepository
	poolRepo         repositories.PoolRepository
	medicineRepo     repositories.MedicineRepository
	prescriptionRepo repositories.PrescriptionRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	caseRepo repositories.CaseRepository,
	poolRepo repositories.PoolRepository,
	medicineRepo repositories.MedicineRepository,
	prescriptionRepo repositories.PrescriptionRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		caseRepo:         caseRepo,
		poolRepo:         poolRepo,
		medicineRepo:     medicineRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

// ListDoctors returns all doctor accounts, admin only
func (u *AdminUsecase) ListDoctors(ctx context.Context, callerID uuid.UUID) ([]*entities.User, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.userRepo.ListByRole(ctx, entities.UserRoleDoctor)
}

// ListPatients returns all patient accounts, admin only
func (u *AdminUsecase) ListPatients(ctx context.Context, callerID uuid.UUID) ([]*entities.User, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.userRepo.ListByRole(ctx, entities.UserRolePatient)
}

// ListNGOs returns all NGO accounts, admin only
func (u *AdminUsecase) ListNGOs(ctx context.Context, callerID uuid.UUID) ([]*entities.User, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.userRepo.ListByRole(ctx, entities.UserRoleNGO)
}

// GetUserStats summarizes one user's activity, admin only
func (u *AdminUsecase) GetUserStats(ctx context.Context, callerID uuid.UUID, userID uuid.UUID) (*entities.UserStats, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &entities.UserStats{
		UserID:             user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		VerificationStatus: user.VerificationStatus,
		LastActiveAt:       user.LastActiveAt,
		CreatedAt:          user.CreatedAt,
	}

	if user.Role == entities.UserRoleDoctor {
		if stats.TotalPrescriptions, err = u.prescriptionRepo.CountByDoctor(ctx, user.ID); err != nil {
			return nil, err
		}
		if stats.TotalMedicines, err = u.medicineRepo.CountByDoctor(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// SystemOverview aggregates platform-wide counts, admin only
func (u *AdminUsecase) SystemOverview(ctx context.Context, callerID uuid.UUID) (*entities.SystemOverview, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}

	overview := &entities.SystemOverview{}
	var err error

	if overview.TotalDoctors, err = u.userRepo.CountByRole(ctx, entities.UserRoleDoctor); err != nil {
		return nil, err
	}
	if overview.TotalPatients, err = u.userRepo.CountByRole(ctx, entities.UserRolePatient); err != nil {
		return nil, err
	}
	if overview.TotalNGOs, err = u.userRepo.CountByRole(ctx, entities.UserRoleNGO); err != nil {
		return nil, err
	}
	if overview.VerifiedDoctors, err = u.userRepo.CountByRoleAndStatus(ctx, entities.UserRoleDoctor, entities.VerificationApproved); err != nil {
		return nil, err
	}

	pending, err := u.verificationRepo.ListByStatus(ctx, entities.VerificationPending)
	if err != nil {
		return nil, err
	}
	overview.PendingVerifications = int64(len(pending))

	if overview.TotalCases, err = u.caseRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalPools, err = u.poolRepo.Count(ctx); err != nil {
		return nil, err
	}
	return overview, nil
}
