package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/infrastructure/models"
)

// PoolRepositoryImpl implements PoolRepository
type PoolRepositoryImpl struct {
	db *gorm.DB
}

// NewPoolRepository creates a new contribution pool repository
func NewPoolRepository(db *gorm.DB) *PoolRepositoryImpl {
	return &PoolRepositoryImpl{db: db}
}

// Create stores a new contribution pool
func (r *PoolRepositoryImpl) Create(ctx context.Context, pool *entities.ContributionPool) error {
	now := time.Now()
	m := &models.ContributionPool{
		ID:                pool.ID,
		CaseID:            pool.CaseID,
		NGOID:             pool.NGOID,
		NGOName:           pool.NGOName,
		Title:             pool.Title,
		Description:       pool.Description,
		TargetAmount:      pool.TargetAmount,
		CurrentAmount:     pool.CurrentAmount,
		ContributorsCount: pool.ContributorsCount,
		Deadline:          pool.Deadline.Ptr(),
		IsActive:          pool.IsActive,
		IsCompleted:       pool.IsCompleted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return getDB(ctx, r.db).Create(m).Error
}

// GetByID gets a pool by ID
func (r *PoolRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.ContributionPool, error) {
	var m models.ContributionPool
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return poolToEntity(&m), nil
}

// GetByCaseID gets the pool opened against a case, if any
func (r *PoolRepositoryImpl) GetByCaseID(ctx context.Context, caseID uuid.UUID) (*entities.ContributionPool, error) {
	var m models.ContributionPool
	if err := getDB(ctx, r.db).Where("case_id = ?", caseID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return poolToEntity(&m), nil
}

// Update writes funding progress on a pool
func (r *PoolRepositoryImpl) Update(ctx context.Context, pool *entities.ContributionPool) error {
	return getDB(ctx, r.db).Model(&models.ContributionPool{}).
		Where("id = ?", pool.ID).
		Updates(map[string]interface{}{
			"current_amount":     pool.CurrentAmount,
			"contributors_count": pool.ContributorsCount,
			"is_active":          pool.IsActive,
			"is_completed":       pool.IsCompleted,
			"updated_at":         time.Now(),
		}).Error
}

// List lists all pools, newest first
func (r *PoolRepositoryImpl) List(ctx context.Context) ([]*entities.ContributionPool, error) {
	var ms []models.ContributionPool
	if err := getDB(ctx, r.db).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return poolsToEntities(ms), nil
}

// ListActive lists pools that are active and not yet completed
func (r *PoolRepositoryImpl) ListActive(ctx context.Context) ([]*entities.ContributionPool, error) {
	var ms []models.ContributionPool
	if err := getDB(ctx, r.db).
		Where("is_active = ? AND is_completed = ?", true, false).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return poolsToEntities(ms), nil
}

// ListByNGO lists pools opened by the given NGO
func (r *PoolRepositoryImpl) ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entities.ContributionPool, error) {
	var ms []models.ContributionPool
	if err := getDB(ctx, r.db).
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return poolsToEntities(ms), nil
}

// ListExpiredActive lists still-active incomplete pools whose deadline passed
func (r *PoolRepositoryImpl) ListExpiredActive(ctx context.Context, limit int) ([]*entities.ContributionPool, error) {
	var ms []models.ContributionPool
	if err := getDB(ctx, r.db).
		Where("is_active = ? AND is_completed = ? AND deadline IS NOT NULL AND deadline < ?", true, false, time.Now()).
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return poolsToEntities(ms), nil
}

// Deactivate marks the given pools inactive
func (r *PoolRepositoryImpl) Deactivate(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return getDB(ctx, r.db).Model(&models.ContributionPool{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

// Count counts all pools
func (r *PoolRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.ContributionPool{}).Count(&count).Error
	return count, err
}

func poolsToEntities(ms []models.ContributionPool) []*entities.ContributionPool {
	pools := make([]*entities.ContributionPool, 0, len(ms))
	for i := range ms {
		pools = append(pools, poolToEntity(&ms[i]))
	}
	return pools
}

func poolToEntity(m *models.ContributionPool) *entities.ContributionPool {
	return &entities.ContributionPool{
		ID:                m.ID,
		CaseID:            m.CaseID,
		NGOID:             m.NGOID,
		NGOName:           m.NGOName,
		Title:             m.Title,
		Description:       m.Description,
		TargetAmount:      m.TargetAmount,
		CurrentAmount:     m.CurrentAmount,
		ContributorsCount: m.ContributorsCount,
		Deadline:          null.TimeFromPtr(m.Deadline),
		IsActive:          m.IsActive,
		IsCompleted:       m.IsCompleted,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ContributionRepositoryImpl implements ContributionRepository
type ContributionRepositoryImpl struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) *ContributionRepositoryImpl {
	return &ContributionRepositoryImpl{db: db}
}

// Create appends a contribution record
func (r *ContributionRepositoryImpl) Create(ctx context.Context, contribution *entities.Contribution) error {
	m := &models.Contribution{
		ID:            contribution.ID,
		PoolID:        contribution.PoolID,
		ContributorID: contribution.ContributorID,
		Amount:        contribution.Amount,
		Message:       contribution.Message.Ptr(),
		IsAnonymous:   contribution.IsAnonymous,
		ContributedAt: contribution.ContributedAt,
		CreatedAt:     time.Now(),
	}
	return getDB(ctx, r.db).Create(m).Error
}

// ListByPool lists contributions to a pool, oldest first
func (r *ContributionRepositoryImpl) ListByPool(ctx context.Context, poolID uuid.UUID) ([]*entities.Contribution, error) {
	var ms []models.Contribution
	if err := getDB(ctx, r.db).
		Where("pool_id = ?", poolID).
		Order("contributed_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return contributionsToEntities(ms), nil
}

// ListByContributor lists contributions made by a user, newest first
func (r *ContributionRepositoryImpl) ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]*entities.Contribution, error) {
	var ms []models.Contribution
	if err := getDB(ctx, r.db).
		Where("contributor_id = ?", contributorID).
		Order("contributed_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return contributionsToEntities(ms), nil
}

func contributionsToEntities(ms []models.Contribution) []*entities.Contribution {
	contributions := make([]*entities.Contribution, 0, len(ms))
	for i := range ms {
		m := ms[i]
		contributions = append(contributions, &entities.Contribution{
			ID:            m.ID,
			PoolID:        m.PoolID,
			ContributorID: m.ContributorID,
			Amount:        m.Amount,
			Message:       null.StringFromPtr(m.Message),
			IsAnonymous:   m.IsAnonymous,
			ContributedAt: m.ContributedAt,
		})
	}
	return contributions
}
