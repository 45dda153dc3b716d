package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
)

func TestPrescriptionRepository_CreateWithLines(t *testing.T) {
	db := newTestDB(t)
	createPrescriptionTables(t, db)
	repo := NewPrescriptionRepository(db)
	ctx := context.Background()

	medicineA := uuid.New()
	medicineB := uuid.New()
	p := &entities.Prescription{
		ID:             uuid.New(),
		Code:           "AB12CD34",
		DoctorID:       uuid.New(),
		PatientName:    "Pat",
		PatientContact: "pat@example.com",
		Medicines: []entities.PrescriptionMedicine{
			{MedicineID: medicineA, CustomDosage: null.StringFrom("250mg"), CustomInstructions: "After meals"},
			{MedicineID: medicineB},
		},
		AdditionalNotes: "Finish the full course",
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Medicines, 2)
	require.Equal(t, medicineA, got.Medicines[0].MedicineID)
	require.Equal(t, "250mg", got.Medicines[0].CustomDosage.String)
	require.Equal(t, "After meals", got.Medicines[0].CustomInstructions)
	require.False(t, got.Medicines[1].CustomDosage.Valid)
	require.Nil(t, got.ClaimedBy)

	byCode, err := repo.GetByCode(ctx, "AB12CD34")
	require.NoError(t, err)
	require.Equal(t, p.ID, byCode.ID)
}

func TestPrescriptionRepository_MarkAccessed(t *testing.T) {
	db := newTestDB(t)
	createPrescriptionTables(t, db)
	repo := NewPrescriptionRepository(db)
	ctx := context.Background()

	p := &entities.Prescription{
		ID:             uuid.New(),
		Code:           "EF56GH78",
		DoctorID:       uuid.New(),
		PatientName:    "Pat",
		PatientContact: "pat@example.com",
	}
	require.NoError(t, repo.Create(ctx, p))

	patient := uuid.New()
	require.NoError(t, repo.MarkAccessed(ctx, p.ID, patient))

	claimed, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.ClaimedBy)
	require.Equal(t, patient, *claimed.ClaimedBy)
	require.True(t, claimed.AccessedAt.Valid)
}

func TestPrescriptionRepository_ListAndCountByDoctor(t *testing.T) {
	db := newTestDB(t)
	createPrescriptionTables(t, db)
	repo := NewPrescriptionRepository(db)
	ctx := context.Background()

	doctor := uuid.New()
	for _, code := range []string{"AAAA1111", "BBBB2222"} {
		require.NoError(t, repo.Create(ctx, &entities.Prescription{
			ID:             uuid.New(),
			Code:           code,
			DoctorID:       doctor,
			PatientName:    "Pat",
			PatientContact: "pat@example.com",
		}))
	}
	require.NoError(t, repo.Create(ctx, &entities.Prescription{
		ID:             uuid.New(),
		Code:           "CCCC3333",
		DoctorID:       uuid.New(),
		PatientName:    "Other",
		PatientContact: "other@example.com",
	}))

	mine, err := repo.ListByDoctor(ctx, doctor)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	count, err := repo.CountByDoctor(ctx, doctor)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestPrescriptionRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createPrescriptionTables(t, db)
	repo := NewPrescriptionRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.GetByCode(ctx, "ZZZZ9999")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
