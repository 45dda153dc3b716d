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

// CaseRepositoryImpl implements CaseRepository
type CaseRepositoryImpl struct {
	db *gorm.DB
}

// NewCaseRepository creates a new patient case repository
func NewCaseRepository(db *gorm.DB) *CaseRepositoryImpl {
	return &CaseRepositoryImpl{db: db}
}

// Create stores a new patient case
func (r *CaseRepositoryImpl) Create(ctx context.Context, patientCase *entities.PatientCase) error {
	now := time.Now()
	m := &models.PatientCase{
		ID:               patientCase.ID,
		PatientID:        patientCase.PatientID,
		PatientName:      patientCase.PatientName,
		PatientContact:   patientCase.PatientContact,
		Title:            patientCase.Title,
		Description:      patientCase.Description,
		MedicalCondition: patientCase.MedicalCondition,
		RequiredAmount:   patientCase.RequiredAmount,
		Documents:        encodeDocuments(patientCase.Documents),
		Urgency:          string(patientCase.Urgency),
		Status:           string(patientCase.Status),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return getDB(ctx, r.db).Create(m).Error
}

// GetByID gets a patient case by ID
func (r *CaseRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.PatientCase, error) {
	var m models.PatientCase
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return caseToEntity(&m), nil
}

// Update writes review state on a patient case
func (r *CaseRepositoryImpl) Update(ctx context.Context, patientCase *entities.PatientCase) error {
	updates := map[string]interface{}{
		"status":     string(patientCase.Status),
		"updated_at": time.Now(),
	}
	if patientCase.ReviewedAt.Valid {
		updates["reviewed_at"] = patientCase.ReviewedAt.Time
	}
	if patientCase.ReviewedBy != nil {
		updates["reviewed_by"] = *patientCase.ReviewedBy
	}
	if patientCase.AdminNotes.Valid {
		updates["admin_notes"] = patientCase.AdminNotes.String
	}
	return getDB(ctx, r.db).Model(&models.PatientCase{}).
		Where("id = ?", patientCase.ID).
		Updates(updates).Error
}

// UpdateStatus sets only the case status
func (r *CaseRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CaseStatus) error {
	return getDB(ctx, r.db).Model(&models.PatientCase{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// List lists all cases, newest first
func (r *CaseRepositoryImpl) List(ctx context.Context) ([]*entities.PatientCase, error) {
	var ms []models.PatientCase
	if err := getDB(ctx, r.db).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return casesToEntities(ms), nil
}

// ListByStatus lists cases with the given status
func (r *CaseRepositoryImpl) ListByStatus(ctx context.Context, status entities.CaseStatus) ([]*entities.PatientCase, error) {
	return r.ListByStatuses(ctx, []entities.CaseStatus{status})
}

// ListByStatuses lists cases whose status is in the given set
func (r *CaseRepositoryImpl) ListByStatuses(ctx context.Context, statuses []entities.CaseStatus) ([]*entities.PatientCase, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	var ms []models.PatientCase
	if err := getDB(ctx, r.db).
		Where("status IN ?", values).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return casesToEntities(ms), nil
}

// ListByPatient lists cases owned by the given patient
func (r *CaseRepositoryImpl) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.PatientCase, error) {
	var ms []models.PatientCase
	if err := getDB(ctx, r.db).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return casesToEntities(ms), nil
}

// Count counts all cases
func (r *CaseRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.PatientCase{}).Count(&count).Error
	return count, err
}

func casesToEntities(ms []models.PatientCase) []*entities.PatientCase {
	cases := make([]*entities.PatientCase, 0, len(ms))
	for i := range ms {
		cases = append(cases, caseToEntity(&ms[i]))
	}
	return cases
}

func caseToEntity(m *models.PatientCase) *entities.PatientCase {
	return &entities.PatientCase{
		ID:               m.ID,
		PatientID:        m.PatientID,
		PatientName:      m.PatientName,
		PatientContact:   m.PatientContact,
		Title:            m.Title,
		Description:      m.Description,
		MedicalCondition: m.MedicalCondition,
		RequiredAmount:   m.RequiredAmount,
		Documents:        decodeDocuments(m.Documents),
		Urgency:          entities.UrgencyLevel(m.Urgency),
		Status:           entities.CaseStatus(m.Status),
		ReviewedAt:       null.TimeFromPtr(m.ReviewedAt),
		ReviewedBy:       m.ReviewedBy,
		AdminNotes:       null.StringFromPtr(m.AdminNotes),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
