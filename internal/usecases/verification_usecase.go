package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
	"medseal.backend/pkg/utils"
)

// VerificationUsecase handles credential verification workflows
type VerificationUsecase struct {
	verificationRepo repositories.VerificationRepository
	userRepo         repositories.UserRepository
	uow              repositories.UnitOfWork
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *VerificationUsecase {
	return &VerificationUsecase{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		uow:              uow,
	}
}

// Submit files a credential verification request for a doctor or NGO. A new
// request is allowed only when the caller has no live request: resubmission
// after a rejection is fine, a pending or approved state blocks it.
func (u *VerificationUsecase) Submit(ctx context.Context, callerID uuid.UUID, input *entities.SubmitVerificationInput) (*entities.VerificationRequest, error) {
	caller, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleDoctor, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	if caller.VerificationStatus == entities.VerificationApproved {
		return nil, domainerrors.Conflict("You are already verified")
	}
	if caller.VerificationRequest != nil && caller.VerificationRequest.Status == entities.VerificationPending {
		return nil, domainerrors.Conflict("You already have a pending verification request")
	}

	verificationType := entities.VerificationTypeDoctor
	if caller.Role == entities.UserRoleNGO {
		verificationType = entities.VerificationTypeNGO
	}

	request := &entities.VerificationRequest{
		ID:                      utils.GenerateUUIDv7(),
		RequesterID:             caller.ID,
		Type:                    verificationType,
		InstitutionName:         input.InstitutionName,
		InstitutionWebsite:      input.InstitutionWebsite,
		LicenseAuthority:        input.LicenseAuthority,
		LicenseAuthorityWebsite: input.LicenseAuthorityWebsite,
		LicenseNumber:           input.LicenseNumber,
		Documents:               input.Documents,
		Status:                  entities.VerificationPending,
		SubmittedAt:             time.Now(),
	}

	// The request row and the user's status move together so a reviewer
	// never sees a pending user without a request to act on.
	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.verificationRepo.Create(txCtx, request); err != nil {
			return err
		}
		return u.userRepo.UpdateVerification(txCtx, caller.ID, entities.VerificationPending, &request.ID)
	}); err != nil {
		return nil, err
	}

	return request, nil
}

// Process records an admin decision on a pending request. Approving or
// rejecting a request that is no longer pending fails.
func (u *VerificationUsecase) Process(ctx context.Context, callerID uuid.UUID, requestID uuid.UUID, input *entities.ProcessVerificationInput) (*entities.VerificationRequest, error) {
	admin, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	request, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Verification request not found")
		}
		return nil, err
	}

	if request.Status != entities.VerificationPending {
		return nil, domainerrors.InvalidState("Verification request has already been processed")
	}

	request.Status = input.Status
	request.ProcessedAt = null.TimeFrom(time.Now())
	request.ProcessedBy = &admin.ID
	if len(input.AdminNotes) > 0 {
		request.AdminNotes = null.StringFrom(strings.Join(input.AdminNotes, "\n"))
	}

	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.verificationRepo.Update(txCtx, request); err != nil {
			return err
		}
		return u.userRepo.UpdateVerification(txCtx, request.RequesterID, input.Status, &request.ID)
	}); err != nil {
		return nil, err
	}

	return request, nil
}

// Get returns one request, visible to admins and to its own requester
func (u *VerificationUsecase) Get(ctx context.Context, callerID uuid.UUID, requestID uuid.UUID) (*entities.VerificationRequest, error) {
	caller, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	request, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Verification request not found")
		}
		return nil, err
	}

	if caller.Role != entities.UserRoleAdmin && request.RequesterID != caller.ID {
		return nil, domainerrors.Forbidden("You can only view your own verification request")
	}
	return request, nil
}

// List returns all requests, admin only
func (u *VerificationUsecase) List(ctx context.Context, callerID uuid.UUID) ([]*entities.VerificationRequest, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.verificationRepo.List(ctx)
}

// ListPending returns the admin review queue
func (u *VerificationUsecase) ListPending(ctx context.Context, callerID uuid.UUID) ([]*entities.VerificationRequest, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.verificationRepo.ListByStatus(ctx, entities.VerificationPending)
}

// ListByType returns requests of one type, admin only
func (u *VerificationUsecase) ListByType(ctx context.Context, callerID uuid.UUID, verificationType entities.VerificationType) ([]*entities.VerificationRequest, error) {
	if _, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.verificationRepo.ListByType(ctx, verificationType)
}
