package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
)

func seedMedicine(t *testing.T, repo *MedicineRepositoryImpl, doctorID uuid.UUID) *entities.Medicine {
	t.Helper()
	m := &entities.Medicine{
		ID:        uuid.New(),
		Name:      "Amoxicillin",
		Dosage:    "500mg",
		Frequency: "2x daily",
		Duration:  "7 days",
		DoctorID:  doctorID,
		IsActive:  true,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMedicineRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createMedicineTable(t, db)
	repo := NewMedicineRepository(db)
	ctx := context.Background()

	m := seedMedicine(t, repo, uuid.New())

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Amoxicillin", got.Name)
	require.True(t, got.IsActive)

	got.Name = "Amoxicillin 500"
	got.IsActive = false
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Amoxicillin 500", updated.Name)
	require.False(t, updated.IsActive)
}

func TestMedicineRepository_ListAndCountByDoctor(t *testing.T) {
	db := newTestDB(t)
	createMedicineTable(t, db)
	repo := NewMedicineRepository(db)
	ctx := context.Background()

	doctor := uuid.New()
	seedMedicine(t, repo, doctor)
	seedMedicine(t, repo, doctor)
	seedMedicine(t, repo, uuid.New())

	mine, err := repo.ListByDoctor(ctx, doctor)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	count, err := repo.CountByDoctor(ctx, doctor)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestMedicineRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createMedicineTable(t, db)
	repo := NewMedicineRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
