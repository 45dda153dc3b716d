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

// VerificationRepositoryImpl implements VerificationRepository
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepositoryImpl {
	return &VerificationRepositoryImpl{db: db}
}

// Create stores a new verification request
func (r *VerificationRepositoryImpl) Create(ctx context.Context, request *entities.VerificationRequest) error {
	now := time.Now()
	m := &models.VerificationRequest{
		ID:                      request.ID,
		RequesterID:             request.RequesterID,
		Type:                    string(request.Type),
		InstitutionName:         request.InstitutionName,
		InstitutionWebsite:      request.InstitutionWebsite,
		LicenseAuthority:        request.LicenseAuthority,
		LicenseAuthorityWebsite: request.LicenseAuthorityWebsite,
		LicenseNumber:           request.LicenseNumber,
		Documents:               encodeDocuments(request.Documents),
		Status:                  string(request.Status),
		SubmittedAt:             request.SubmittedAt,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	return getDB(ctx, r.db).Create(m).Error
}

// GetByID gets a verification request by ID
func (r *VerificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return verificationToEntity(&m), nil
}

// Update writes the processed state of a verification request
func (r *VerificationRepositoryImpl) Update(ctx context.Context, request *entities.VerificationRequest) error {
	updates := map[string]interface{}{
		"status":     string(request.Status),
		"updated_at": time.Now(),
	}
	if request.ProcessedAt.Valid {
		updates["processed_at"] = request.ProcessedAt.Time
	}
	if request.ProcessedBy != nil {
		updates["processed_by"] = *request.ProcessedBy
	}
	if request.AdminNotes.Valid {
		updates["admin_notes"] = request.AdminNotes.String
	}
	return getDB(ctx, r.db).Model(&models.VerificationRequest{}).
		Where("id = ?", request.ID).
		Updates(updates).Error
}

// List lists all verification requests, newest first
func (r *VerificationRepositoryImpl) List(ctx context.Context) ([]*entities.VerificationRequest, error) {
	var ms []models.VerificationRequest
	if err := getDB(ctx, r.db).Order("submitted_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return verificationsToEntities(ms), nil
}

// ListByStatus lists verification requests with the given status
func (r *VerificationRepositoryImpl) ListByStatus(ctx context.Context, status entities.VerificationStatus) ([]*entities.VerificationRequest, error) {
	var ms []models.VerificationRequest
	if err := getDB(ctx, r.db).
		Where("status = ?", string(status)).
		Order("submitted_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return verificationsToEntities(ms), nil
}

// ListByType lists verification requests of the given requester type
func (r *VerificationRepositoryImpl) ListByType(ctx context.Context, verificationType entities.VerificationType) ([]*entities.VerificationRequest, error) {
	var ms []models.VerificationRequest
	if err := getDB(ctx, r.db).
		Where("type = ?", string(verificationType)).
		Order("submitted_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return verificationsToEntities(ms), nil
}

func verificationsToEntities(ms []models.VerificationRequest) []*entities.VerificationRequest {
	requests := make([]*entities.VerificationRequest, 0, len(ms))
	for i := range ms {
		requests = append(requests, verificationToEntity(&ms[i]))
	}
	return requests
}

func verificationToEntity(m *models.VerificationRequest) *entities.VerificationRequest {
	return &entities.VerificationRequest{
		ID:                      m.ID,
		RequesterID:             m.RequesterID,
		Type:                    entities.VerificationType(m.Type),
		InstitutionName:         m.InstitutionName,
		InstitutionWebsite:      m.InstitutionWebsite,
		LicenseAuthority:        m.LicenseAuthority,
		LicenseAuthorityWebsite: m.LicenseAuthorityWebsite,
		LicenseNumber:           m.LicenseNumber,
		Documents:               decodeDocuments(m.Documents),
		Status:                  entities.VerificationStatus(m.Status),
		SubmittedAt:             m.SubmittedAt,
		ProcessedAt:             null.TimeFromPtr(m.ProcessedAt),
		ProcessedBy:             m.ProcessedBy,
		AdminNotes:              null.StringFromPtr(m.AdminNotes),
	}
}
