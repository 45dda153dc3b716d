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
	"medseal.backend/pkg/utils"
)

// PrescriptionRepositoryImpl implements PrescriptionRepository
type PrescriptionRepositoryImpl struct {
	db *gorm.DB
}

// NewPrescriptionRepository creates a new prescription repository
func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepositoryImpl {
	return &PrescriptionRepositoryImpl{db: db}
}

// Create stores a prescription and its medicine lines
func (r *PrescriptionRepositoryImpl) Create(ctx context.Context, prescription *entities.Prescription) error {
	db := getDB(ctx, r.db)
	now := time.Now()

	m := &models.Prescription{
		ID:              prescription.ID,
		Code:            prescription.Code,
		DoctorID:        prescription.DoctorID,
		PatientName:     prescription.PatientName,
		PatientContact:  prescription.PatientContact,
		AdditionalNotes: prescription.AdditionalNotes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for _, line := range prescription.Medicines {
		lm := &models.PrescriptionMedicine{
			ID:                 utils.GenerateUUIDv7(),
			PrescriptionID:     prescription.ID,
			MedicineID:         line.MedicineID,
			CustomDosage:       line.CustomDosage.Ptr(),
			CustomInstructions: line.CustomInstructions,
		}
		if err := db.Create(lm).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets a prescription by ID
func (r *PrescriptionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Prescription, error) {
	var m models.Prescription
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(ctx, &m)
}

// GetByCode gets a prescription by its claim code
func (r *PrescriptionRepositoryImpl) GetByCode(ctx context.Context, code string) (*entities.Prescription, error) {
	var m models.Prescription
	if err := getDB(ctx, r.db).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(ctx, &m)
}

// MarkAccessed stamps the claim time and binds the claiming user
func (r *PrescriptionRepositoryImpl) MarkAccessed(ctx context.Context, id uuid.UUID, claimedBy uuid.UUID) error {
	now := time.Now()
	return getDB(ctx, r.db).Model(&models.Prescription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"claimed_by":  claimedBy,
			"accessed_at": now,
			"updated_at":  now,
		}).Error
}

// ListByDoctor lists prescriptions issued by a doctor
func (r *PrescriptionRepositoryImpl) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entities.Prescription, error) {
	var ms []models.Prescription
	if err := getDB(ctx, r.db).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	prescriptions := make([]*entities.Prescription, 0, len(ms))
	for i := range ms {
		p, err := r.toEntity(ctx, &ms[i])
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, nil
}

// CountByDoctor counts prescriptions issued by a doctor
func (r *PrescriptionRepositoryImpl) CountByDoctor(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Prescription{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}

func (r *PrescriptionRepositoryImpl) toEntity(ctx context.Context, m *models.Prescription) (*entities.Prescription, error) {
	var lines []models.PrescriptionMedicine
	if err := getDB(ctx, r.db).
		Where("prescription_id = ?", m.ID).
		Find(&lines).Error; err != nil {
		return nil, err
	}

	medicines := make([]entities.PrescriptionMedicine, 0, len(lines))
	for _, line := range lines {
		medicines = append(medicines, entities.PrescriptionMedicine{
			MedicineID:         line.MedicineID,
			CustomDosage:       null.StringFromPtr(line.CustomDosage),
			CustomInstructions: line.CustomInstructions,
		})
	}

	return &entities.Prescription{
		ID:              m.ID,
		Code:            m.Code,
		DoctorID:        m.DoctorID,
		PatientName:     m.PatientName,
		PatientContact:  m.PatientContact,
		Medicines:       medicines,
		AdditionalNotes: m.AdditionalNotes,
		ClaimedBy:       m.ClaimedBy,
		AccessedAt:      null.TimeFromPtr(m.AccessedAt),
		CreatedAt:       m.CreatedAt,
	}, nil
}
