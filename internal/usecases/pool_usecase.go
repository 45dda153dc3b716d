package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
	"medseal.backend/pkg/utils"
)

// PoolUsecase handles contribution pools and contributions
type PoolUsecase struct {
	poolRepo         repositories.PoolRepository
	contributionRepo repositories.ContributionRepository
	caseRepo         repositories.CaseRepository
	userRepo         repositories.UserRepository
	uow              repositories.UnitOfWork
}

// NewPoolUsecase creates a new pool usecase
func NewPoolUsecase(
	poolRepo repositories.PoolRepository,
	contributionRepo repositories.ContributionRepository,
	caseRepo repositories.CaseRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *PoolUsecase {
	return &PoolUsecase{
		poolRepo:         poolRepo,
		contributionRepo: contributionRepo,
		caseRepo:         caseRepo,
		userRepo:         userRepo,
		uow:              uow,
	}
}

// CreatePool opens a contribution pool against an approved case. One pool per
// case; only verified NGOs may open pools. A deadline, when given, is counted
// in whole days from now.
func (u *PoolUsecase) CreatePool(ctx context.Context, callerID uuid.UUID, input *entities.CreatePoolInput) (*entities.ContributionPool, error) {
	ngo, err := authorizeVerifiedNGO(ctx, u.userRepo, callerID)
	if err != nil {
		return nil, err
	}

	patientCase, err := u.caseRepo.GetByID(ctx, input.CaseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Case not found")
		}
		return nil, err
	}

	if patientCase.Status != entities.CaseStatusApproved {
		return nil, domainerrors.InvalidState("Can only create pools for approved cases")
	}

	if _, err := u.poolRepo.GetByCaseID(ctx, input.CaseID); err == nil {
		return nil, domainerrors.Conflict("A contribution pool already exists for this case")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	pool := &entities.ContributionPool{
		ID:           utils.GenerateUUIDv7(),
		CaseID:       patientCase.ID,
		NGOID:        ngo.ID,
		NGOName:      ngo.Name,
		Title:        input.Title,
		Description:  input.Description,
		TargetAmount: input.TargetAmount,
		IsActive:     true,
	}
	if input.DeadlineDays != nil {
		pool.Deadline = null.TimeFrom(nowFunc().Add(time.Duration(*input.DeadlineDays) * 24 * time.Hour))
	}

	if err := u.poolRepo.Create(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

// Contribute appends a contribution to an active pool. The contribution, the
// pool totals and any funded-case cascade commit in one transaction.
// Completion happens exactly once, the first time the running total reaches
// the target; the contribution that crosses the line may overshoot it.
func (u *PoolUsecase) Contribute(ctx context.Context, callerID uuid.UUID, poolID uuid.UUID, input *entities.ContributeInput) (*entities.Contribution, error) {
	caller, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	pool, err := u.poolRepo.GetByID(ctx, poolID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Pool not found")
		}
		return nil, err
	}

	if !pool.IsActive {
		return nil, domainerrors.InvalidState("Pool is not active")
	}
	if pool.IsCompleted {
		return nil, domainerrors.InvalidState("Pool is already completed")
	}
	if pool.Deadline.Valid && nowFunc().After(pool.Deadline.Time) {
		return nil, domainerrors.Expired("Pool deadline has passed")
	}

	contribution := &entities.Contribution{
		ID:            utils.GenerateUUIDv7(),
		PoolID:        pool.ID,
		ContributorID: caller.ID,
		Amount:        input.Amount,
		IsAnonymous:   input.IsAnonymous,
		ContributedAt: nowFunc(),
	}
	if input.Message != "" {
		contribution.Message = null.StringFrom(input.Message)
	}

	pool.CurrentAmount += input.Amount
	pool.ContributorsCount++
	completed := !pool.IsCompleted && pool.CurrentAmount >= pool.TargetAmount
	if completed {
		pool.IsCompleted = true
		pool.IsActive = false
	}

	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.contributionRepo.Create(txCtx, contribution); err != nil {
			return err
		}
		if err := u.poolRepo.Update(txCtx, pool); err != nil {
			return err
		}
		if completed {
			return u.caseRepo.UpdateStatus(txCtx, pool.CaseID, entities.CaseStatusFunded)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return contribution, nil
}

// Get returns one pool. The read is public: prospective contributors can
// inspect a pool before they have an account.
func (u *PoolUsecase) Get(ctx context.Context, poolID uuid.UUID) (*entities.ContributionPool, error) {
	pool, err := u.poolRepo.GetByID(ctx, poolID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Pool not found")
		}
		return nil, err
	}
	return pool, nil
}

// List returns all pools
func (u *PoolUsecase) List(ctx context.Context, callerID uuid.UUID) ([]*entities.ContributionPool, error) {
	if _, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO); err != nil {
		return nil, err
	}
	return u.poolRepo.List(ctx)
}

// ListActive returns pools still open for contributions
func (u *PoolUsecase) ListActive(ctx context.Context, callerID uuid.UUID) ([]*entities.ContributionPool, error) {
	if _, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO); err != nil {
		return nil, err
	}
	return u.poolRepo.ListActive(ctx)
}

// ListByNGO returns pools opened by one NGO. NGOs may only list their own;
// admins may list anyone's.
func (u *PoolUsecase) ListByNGO(ctx context.Context, callerID uuid.UUID, ngoID uuid.UUID) ([]*entities.ContributionPool, error) {
	caller, err := authorize(ctx, u.userRepo, callerID, entities.UserRoleAdmin, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}
	if caller.Role == entities.UserRoleNGO && caller.ID != ngoID {
		return nil, domainerrors.Forbidden("You can only view your own pools")
	}
	return u.poolRepo.ListByNGO(ctx, ngoID)
}

// ListContributions returns the contributions made to a pool
func (u *PoolUsecase) ListContributions(ctx context.Context, callerID uuid.UUID, poolID uuid.UUID) ([]*entities.Contribution, error) {
	if _, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO); err != nil {
		return nil, err
	}

	if _, err := u.poolRepo.GetByID(ctx, poolID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Pool not found")
		}
		return nil, err
	}
	return u.contributionRepo.ListByPool(ctx, poolID)
}

// ListMyContributions returns the caller's own contribution history
func (u *PoolUsecase) ListMyContributions(ctx context.Context, callerID uuid.UUID) ([]*entities.Contribution, error) {
	caller, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO)
	if err != nil {
		return nil, err
	}
	return u.contributionRepo.ListByContributor(ctx, caller.ID)
}
