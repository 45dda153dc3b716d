package repositories

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
)

// MedicineRepository defines medicine data operations
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entities.Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Medicine, error)
	Update(ctx context.Context, medicine *entities.Medicine) error
	List(ctx context.Context) ([]*entities.Medicine, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entities.Medicine, error)
	CountByDoctor(ctx context.Context, doctorID uuid.UUID) (int64, error)
}
