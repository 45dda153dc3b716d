package repositories

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
)

// CaseRepository defines patient case data operations
type CaseRepository interface {
	Create(ctx context.Context, patientCase *entities.PatientCase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PatientCase, error)
	Update(ctx context.Context, patientCase *entities.PatientCase) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CaseStatus) error
	List(ctx context.Context) ([]*entities.PatientCase, error)
	ListByStatus(ctx context.Context, status entities.CaseStatus) ([]*entities.PatientCase, error)
	ListByStatuses(ctx context.Context, statuses []entities.CaseStatus) ([]*entities.PatientCase, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.PatientCase, error)
	Count(ctx context.Context) (int64, error)
}
