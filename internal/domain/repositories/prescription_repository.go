package repositories

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
)

// PrescriptionRepository defines prescription data operations
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entities.Prescription) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Prescription, error)
	GetByCode(ctx context.Context, code string) (*entities.Prescription, error)
	MarkAccessed(ctx context.Context, id uuid.UUID, claimedBy uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entities.Prescription, error)
	CountByDoctor(ctx context.Context, doctorID uuid.UUID) (int64, error)
}
