package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PrescriptionMedicine is one medicine line on a prescription
type PrescriptionMedicine struct {
	MedicineID         uuid.UUID   `json:"medicineId" binding:"required"`
	CustomDosage       null.String `json:"customDosage,omitempty"`
	CustomInstructions string      `json:"customInstructions"`
}

// Prescription represents a prescription issued by a doctor and claimable by
// a patient through its short code.
type Prescription struct {
	ID              uuid.UUID              `json:"id"`
	Code            string                 `json:"code"`
	DoctorID        uuid.UUID              `json:"doctorId"`
	PatientName     string                 `json:"patientName"`
	PatientContact  string                 `json:"patientContact"`
	Medicines       []PrescriptionMedicine `json:"medicines"`
	AdditionalNotes string                 `json:"additionalNotes"`
	ClaimedBy       *uuid.UUID             `json:"claimedBy,omitempty"`
	AccessedAt      null.Time              `json:"accessedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// CreatePrescriptionInput represents input for issuing a prescription
type CreatePrescriptionInput struct {
	PatientName     string                 `json:"patientName" binding:"required"`
	PatientContact  string                 `json:"patientContact" binding:"required"`
	Medicines       []PrescriptionMedicine `json:"medicines" binding:"required,min=1"`
	AdditionalNotes string                 `json:"additionalNotes"`
}

// ClaimPrescriptionInput represents input for claiming a prescription by code
type ClaimPrescriptionInput struct {
	Code           string `json:"code" binding:"required"`
	PatientContact string `json:"patientContact" binding:"required"`
}
