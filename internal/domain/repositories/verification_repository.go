package repositories

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
)

// VerificationRepository defines verification request data operations
type VerificationRepository interface {
	Create(ctx context.Context, request *entities.VerificationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error)
	Update(ctx context.Context, request *entities.VerificationRequest) error
	List(ctx context.Context) ([]*entities.VerificationRequest, error)
	ListByStatus(ctx context.Context, status entities.VerificationStatus) ([]*entities.VerificationRequest, error)
	ListByType(ctx context.Context, verificationType entities.VerificationType) ([]*entities.VerificationRequest, error)
}
