package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/infrastructure/models"
)

// UserRepositoryImpl implements UserRepository
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// Create creates a new user
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	now := time.Now()
	m := &models.User{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		Role:               string(user.Role),
		LicenseNumber:      user.LicenseNumber,
		VerificationStatus: string(user.VerificationStatus),
		LastActiveAt:       user.LastActiveAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return getDB(ctx, r.db).Create(m).Error
}

// GetByID gets a user by ID, attaching the referenced verification request
// when one exists.
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(ctx, &m)
}

// GetByEmail gets a user by email
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := getDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(ctx, &m)
}

// Update updates mutable user fields
func (r *UserRepositoryImpl) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":                user.Name,
		"password_hash":       user.PasswordHash,
		"verification_status": string(user.VerificationStatus),
		"updated_at":          time.Now(),
	}
	return getDB(ctx, r.db).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error
}

// UpdateVerification sets the user's verification status and replaces the
// stored request reference in one statement.
func (r *UserRepositoryImpl) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, requestID *uuid.UUID) error {
	return getDB(ctx, r.db).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status":     string(status),
			"verification_request_id": requestID,
			"updated_at":              time.Now(),
		}).Error
}

// TouchLastActive stamps the user's last activity time
func (r *UserRepositoryImpl) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	return getDB(ctx, r.db).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_active_at", time.Now()).Error
}

// ListByRole lists users with the given role
func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	var ms []models.User
	if err := getDB(ctx, r.db).
		Where("role = ?", string(role)).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		user, err := r.toEntity(ctx, &ms[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CountByRole counts users with the given role
func (r *UserRepositoryImpl) CountByRole(ctx context.Context, role entities.UserRole) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.User{}).
		Where("role = ?", string(role)).
		Count(&count).Error
	return count, err
}

// CountByRoleAndStatus counts users with the given role and verification status
func (r *UserRepositoryImpl) CountByRoleAndStatus(ctx context.Context, role entities.UserRole, status entities.VerificationStatus) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.User{}).
		Where("role = ? AND verification_status = ?", string(role), string(status)).
		Count(&count).Error
	return count, err
}

// toEntity converts a user row, attaching the referenced verification
// request. A dangling reference is treated as absence; any other load error
// is propagated so callers never act on a user whose request state is
// unknown.
func (r *UserRepositoryImpl) toEntity(ctx context.Context, m *models.User) (*entities.User, error) {
	user := &entities.User{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Role:               entities.UserRole(m.Role),
		LicenseNumber:      m.LicenseNumber,
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		LastActiveAt:       m.LastActiveAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.VerificationRequestID != nil {
		var vm models.VerificationRequest
		err := getDB(ctx, r.db).Where("id = ?", *m.VerificationRequestID).First(&vm).Error
		switch {
		case err == nil:
			user.VerificationRequest = verificationToEntity(&vm)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}
	return user, nil
}

// SystemFlagRepositoryImpl implements SystemFlagRepository
type SystemFlagRepositoryImpl struct {
	db *gorm.DB
}

const adminExistsFlag = "admin_exists"

// NewSystemFlagRepository creates a new system flag repository
func NewSystemFlagRepository(db *gorm.DB) *SystemFlagRepositoryImpl {
	return &SystemFlagRepositoryImpl{db: db}
}

// AdminExists reports whether an admin user has ever been registered
func (r *SystemFlagRepositoryImpl) AdminExists(ctx context.Context) (bool, error) {
	var m models.SystemFlag
	if err := getDB(ctx, r.db).Where("name = ?", adminExistsFlag).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.Value, nil
}

// SetAdminExists sets the admin-exists singleton flag
func (r *SystemFlagRepositoryImpl) SetAdminExists(ctx context.Context, exists bool) error {
	m := &models.SystemFlag{
		Name:      adminExistsFlag,
		Value:     exists,
		UpdatedAt: time.Now(),
	}
	return getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
}
