package repositories

import (
	"context"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
)

// PoolRepository defines contribution pool data operations
type PoolRepository interface {
	Create(ctx context.Context, pool *entities.ContributionPool) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ContributionPool, error)
	GetByCaseID(ctx context.Context, caseID uuid.UUID) (*entities.ContributionPool, error)
	Update(ctx context.Context, pool *entities.ContributionPool) error
	List(ctx context.Context) ([]*entities.ContributionPool, error)
	ListActive(ctx context.Context) ([]*entities.ContributionPool, error)
	ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entities.ContributionPool, error)
	ListExpiredActive(ctx context.Context, limit int) ([]*entities.ContributionPool, error)
	Deactivate(ctx context.Context, ids []uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// ContributionRepository defines contribution data operations.
// Contributions are append-only; there is no update or delete.
type ContributionRepository interface {
	Create(ctx context.Context, contribution *entities.Contribution) error
	ListByPool(ctx context.Context, poolID uuid.UUID) ([]*entities.Contribution, error)
	ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]*entities.Contribution, error)
}
