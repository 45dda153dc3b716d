package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
)

// AssistantClient abstracts the external chat model endpoint
type AssistantClient interface {
	Complete(ctx context.Context, systemPrompt string, messages []entities.ChatMessage) (string, error)
}

// ChatUsecase handles assistant conversations. All platform state is read
// before the external call and nothing is written afterwards, so a slow or
// failing model can never corrupt workflow data.
type ChatUsecase struct {
	assistant        AssistantClient
	prescriptionRepo repositories.PrescriptionRepository
	medicineRepo     repositories.MedicineRepository
	userRepo         repositories.UserRepository
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(
	assistant AssistantClient,
	prescriptionRepo repositories.PrescriptionRepository,
	medicineRepo repositories.MedicineRepository,
	userRepo repositories.UserRepository,
) *ChatUsecase {
	return &ChatUsecase{
		assistant:        assistant,
		prescriptionRepo: prescriptionRepo,
		medicineRepo:     medicineRepo,
		userRepo:         userRepo,
	}
}

const generalPrompt = "You are a helpful health information assistant for a charity healthcare platform. " +
	"Answer general health questions clearly and briefly. You must not diagnose conditions or prescribe treatment; " +
	"advise users to consult their doctor for medical decisions."

// General answers a free-form health question
func (u *ChatUsecase) General(ctx context.Context, callerID uuid.UUID, input *entities.GeneralChatInput) (string, error) {
	if _, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO); err != nil {
		return "", err
	}
	return u.assistant.Complete(ctx, generalPrompt, input.Messages)
}

// Prescription answers questions scoped to one claimed prescription. The
// caller must be the patient who claimed it.
func (u *ChatUsecase) Prescription(ctx context.Context, callerID uuid.UUID, input *entities.PrescriptionChatInput) (string, error) {
	patient, err := authorize(ctx, u.userRepo, callerID, entities.UserRolePatient)
	if err != nil {
		return "", err
	}

	prescription, err := u.prescriptionRepo.GetByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("Invalid prescription code")
		}
		return "", err
	}
	if prescription.ClaimedBy == nil || *prescription.ClaimedBy != patient.ID {
		return "", domainerrors.Forbidden("You can only ask about prescriptions you have claimed")
	}

	var sb strings.Builder
	sb.WriteString(generalPrompt)
	sb.WriteString("\n\nThe patient is asking about their prescription. Its contents:\n")
	for _, line := range prescription.Medicines {
		medicine, err := u.medicineRepo.GetByID(ctx, line.MedicineID)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "- %s, dosage %s", medicine.Name, medicine.Dosage)
		if line.CustomDosage.Valid {
			fmt.Fprintf(&sb, " (adjusted to %s)", line.CustomDosage.String)
		}
		if line.CustomInstructions != "" {
			fmt.Fprintf(&sb, ", instructions: %s", line.CustomInstructions)
		}
		sb.WriteString("\n")
	}
	if prescription.AdditionalNotes != "" {
		fmt.Fprintf(&sb, "Doctor's notes: %s\n", prescription.AdditionalNotes)
	}

	return u.assistant.Complete(ctx, sb.String(), input.Messages)
}

// Medicine answers questions scoped to one medicine's usage guide
func (u *ChatUsecase) Medicine(ctx context.Context, callerID uuid.UUID, input *entities.MedicineChatInput) (string, error) {
	if _, err := authorize(ctx, u.userRepo, callerID,
		entities.UserRoleAdmin, entities.UserRoleDoctor, entities.UserRolePatient, entities.UserRoleNGO); err != nil {
		return "", err
	}

	medicineID, err := uuid.Parse(input.MedicineID)
	if err != nil {
		return "", domainerrors.BadRequest("Invalid medicine ID")
	}

	medicine, err := u.medicineRepo.GetByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("Medicine not found")
		}
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(generalPrompt)
	fmt.Fprintf(&sb, "\n\nThe user is asking about the medicine %s (dosage %s, frequency %s, duration %s).",
		medicine.Name, medicine.Dosage, medicine.Frequency, medicine.Duration)
	if medicine.SideEffects != "" {
		fmt.Fprintf(&sb, " Known side effects: %s.", medicine.SideEffects)
	}
	if medicine.GuideText != "" {
		fmt.Fprintf(&sb, "\nUsage guide:\n%s", medicine.GuideText)
	}

	return u.assistant.Complete(ctx, sb.String(), input.Messages)
}
