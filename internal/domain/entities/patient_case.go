package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CaseStatus represents the review/funding status of a patient case
type CaseStatus string

const (
	CaseStatusPending     CaseStatus = "PENDING"
	CaseStatusUnderReview CaseStatus = "UNDER_REVIEW"
	CaseStatusApproved    CaseStatus = "APPROVED"
	CaseStatusRejected    CaseStatus = "REJECTED"
	CaseStatusFunded      CaseStatus = "FUNDED"
	CaseStatusClosed      CaseStatus = "CLOSED"
)

// UrgencyLevel represents how urgent a patient case is
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "LOW"
	UrgencyMedium   UrgencyLevel = "MEDIUM"
	UrgencyHigh     UrgencyLevel = "HIGH"
	UrgencyCritical UrgencyLevel = "CRITICAL"
)

// PatientCase represents a patient's funding-need case
type PatientCase struct {
	ID               uuid.UUID    `json:"id"`
	PatientID        uuid.UUID    `json:"patientId"`
	PatientName      string       `json:"patientName"`
	PatientContact   string       `json:"patientContact"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	MedicalCondition string       `json:"medicalCondition"`
	RequiredAmount   int64        `json:"requiredAmount"`
	Documents        []string     `json:"documents"`
	Urgency          UrgencyLevel `json:"urgency"`
	Status           CaseStatus   `json:"status"`
	ReviewedAt       null.Time    `json:"reviewedAt,omitempty"`
	ReviewedBy       *uuid.UUID   `json:"reviewedBy,omitempty"`
	AdminNotes       null.String  `json:"adminNotes,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// SubmitCaseInput represents input for filing a patient case
type SubmitCaseInput struct {
	Title            string       `json:"title" binding:"required"`
	Description      string       `json:"description" binding:"required"`
	MedicalCondition string       `json:"medicalCondition" binding:"required"`
	RequiredAmount   int64        `json:"requiredAmount" binding:"required,gt=0"`
	Documents        []string     `json:"documents"`
	Urgency          UrgencyLevel `json:"urgency" binding:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
}

// ReviewCaseInput represents an admin review decision
type ReviewCaseInput struct {
	Status     CaseStatus `json:"status" binding:"required,oneof=UNDER_REVIEW APPROVED REJECTED CLOSED"`
	AdminNotes string     `json:"adminNotes"`
}
