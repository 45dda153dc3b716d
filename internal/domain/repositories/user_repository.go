package repositories

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateVerification(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, requestID *uuid.UUID) error
	TouchLastActive(ctx context.Context, id uuid.UUID) error
	ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error)
	CountByRole(ctx context.Context, role entities.UserRole) (int64, error)
	CountByRoleAndStatus(ctx context.Context, role entities.UserRole, status entities.VerificationStatus) (int64, error)
}

// SystemFlagRepository holds process-wide singleton flags, currently only the
// admin-exists flag backing the singleton-admin invariant.
type SystemFlagRepository interface {
	AdminExists(ctx context.Context) (bool, error)
	SetAdminExists(ctx context.Context, exists bool) error
}
