package entities

import (
	"time"

	"github.com/google/uuid"
)

// Medicine represents a medicine in a doctor's repository
type Medicine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Dosage      string    `json:"dosage"`
	Frequency   string    `json:"frequency"`
	Duration    string    `json:"duration"`
	SideEffects string    `json:"sideEffects"`
	GuideText   string    `json:"guideText"`
	GuideSource string    `json:"guideSource"`
	DoctorID    uuid.UUID `json:"doctorId"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateMedicineInput represents input for adding or updating a medicine
type CreateMedicineInput struct {
	Name        string `json:"name" binding:"required"`
	Dosage      string `json:"dosage" binding:"required"`
	Frequency   string `json:"frequency"`
	Duration    string `json:"duration"`
	SideEffects string `json:"sideEffects"`
	GuideText   string `json:"guideText"`
	GuideSource string `json:"guideSource"`
}
