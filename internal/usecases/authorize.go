package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
)

// authorize resolves the caller's user record and asserts that its role is a
// member of the allowed set. Every workflow operation calls this first; it
// has no side effects.
func authorize(ctx context.Context, userRepo repositories.UserRepository, callerID uuid.UUID, allowed ...entities.UserRole) (*entities.User, error) {
	user, err := userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthenticated("User not found")
		}
		return nil, err
	}

	for _, role := range allowed {
		if user.Role == role {
			return user, nil
		}
	}

	return nil, domainerrors.Forbidden("Insufficient permissions for this operation")
}

// authorizeVerifiedNGO asserts the caller is an NGO whose credentials an
// admin has approved.
func authorizeVerifiedNGO(ctx context.Context, userRepo repositories.UserRepository, callerID uuid.UUID) (*entities.User, error) {
	user, err := authorize(ctx, userRepo, callerID, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	if user.VerificationStatus != entities.VerificationApproved {
		return nil, domainerrors.NotVerified("NGO must be verified to create contribution pools")
	}
	return user, nil
}
