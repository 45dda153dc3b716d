package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/infrastructure/models"
)

// MedicineRepositoryImpl implements MedicineRepository
type MedicineRepositoryImpl struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository
func NewMedicineRepository(db *gorm.DB) *MedicineRepositoryImpl {
	return &MedicineRepositoryImpl{db: db}
}

// Create stores a new medicine
func (r *MedicineRepositoryImpl) Create(ctx context.Context, medicine *entities.Medicine) error {
	now := time.Now()
	m := &models.Medicine{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Dosage:      medicine.Dosage,
		Frequency:   medicine.Frequency,
		Duration:    medicine.Duration,
		SideEffects: medicine.SideEffects,
		GuideText:   medicine.GuideText,
		GuideSource: medicine.GuideSource,
		DoctorID:    medicine.DoctorID,
		IsActive:    medicine.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return getDB(ctx, r.db).Create(m).Error
}

// GetByID gets a medicine by ID
func (r *MedicineRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Medicine, error) {
	var m models.Medicine
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return medicineToEntity(&m), nil
}

// Update rewrites a medicine's mutable fields
func (r *MedicineRepositoryImpl) Update(ctx context.Context, medicine *entities.Medicine) error {
	return getDB(ctx, r.db).Model(&models.Medicine{}).
		Where("id = ?", medicine.ID).
		Updates(map[string]interface{}{
			"name":         medicine.Name,
			"dosage":       medicine.Dosage,
			"frequency":    medicine.Frequency,
			"duration":     medicine.Duration,
			"side_effects": medicine.SideEffects,
			"guide_text":   medicine.GuideText,
			"guide_source": medicine.GuideSource,
			"is_active":    medicine.IsActive,
			"updated_at":   time.Now(),
		}).Error
}

// List lists all medicines
func (r *MedicineRepositoryImpl) List(ctx context.Context) ([]*entities.Medicine, error) {
	var ms []models.Medicine
	if err := getDB(ctx, r.db).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return medicinesToEntities(ms), nil
}

// ListByDoctor lists medicines owned by a doctor
func (r *MedicineRepositoryImpl) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entities.Medicine, error) {
	var ms []models.Medicine
	if err := getDB(ctx, r.db).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return medicinesToEntities(ms), nil
}

// CountByDoctor counts medicines owned by a doctor
func (r *MedicineRepositoryImpl) CountByDoctor(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Medicine{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}

func medicinesToEntities(ms []models.Medicine) []*entities.Medicine {
	medicines := make([]*entities.Medicine, 0, len(ms))
	for i := range ms {
		medicines = append(medicines, medicineToEntity(&ms[i]))
	}
	return medicines
}

func medicineToEntity(m *models.Medicine) *entities.Medicine {
	return &entities.Medicine{
		ID:          m.ID,
		Name:        m.Name,
		Dosage:      m.Dosage,
		Frequency:   m.Frequency,
		Duration:    m.Duration,
		SideEffects: m.SideEffects,
		GuideText:   m.GuideText,
		GuideSource: m.GuideSource,
		DoctorID:    m.DoctorID,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
