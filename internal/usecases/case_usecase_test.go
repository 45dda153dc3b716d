package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/usecases"
)

func caseInput() *entities.SubmitCaseInput {
	return &entities.SubmitCaseInput{
		Title:            "Heart surgery",
		Description:      "Urgent valve replacement",
		MedicalCondition: "Mitral valve failure",
		RequiredAmount:   500000,
		Urgency:          entities.UrgencyCritical,
	}
}

func TestCaseUsecase_Submit(t *testing.T) {
	userRepo := new(MockUserRepository)
	caseRepo := new(MockCaseRepository)
	uc := usecases.NewCaseUsecase(caseRepo, userRepo)

	patient := &entities.User{
		ID:    uuid.New(),
		Name:  "Pat",
		Email: "pat@mail.com",
		Role:  entities.UserRolePatient,
	}
	userRepo.On("GetByID", context.Background(), patient.ID).Return(patient, nil).Once()
	caseRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.PatientCase")).Return(nil).Once()

	patientCase, err := uc.Submit(context.Background(), patient.ID, caseInput())
	assert.NoError(t, err)
	assert.Equal(t, entities.CaseStatusPending, patientCase.Status)
	assert.Equal(t, patient.ID, patientCase.PatientID)
	assert.Equal(t, patient.Name, patientCase.PatientName)
}

func TestCaseUsecase_Submit_NonPatientForbidden(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewCaseUsecase(new(MockCaseRepository), userRepo)

	ngo := &entities.User{ID: uuid.New(), Role: entities.UserRoleNGO}
	userRepo.On("GetByID", context.Background(), ngo.ID).Return(ngo, nil).Once()

	_, err := uc.Submit(context.Background(), ngo.ID, caseInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCaseUsecase_Review_Approve(t *testing.T) {
	userRepo := new(MockUserRepository)
	caseRepo := new(MockCaseRepository)
	uc := usecases.NewCaseUsecase(caseRepo, userRepo)

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	patientCase := &entities.PatientCase{ID: uuid.New(), Status: entities.CaseStatusPending}

	userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	caseRepo.On("GetByID", context.Background(), patientCase.ID).Return(patientCase, nil).Once()
	caseRepo.On("Update", context.Background(), patientCase).Return(nil).Once()

	reviewed, err := uc.Review(context.Background(), admin.ID, patientCase.ID, &entities.ReviewCaseInput{
		Status:     entities.CaseStatusApproved,
		AdminNotes: "Documents verified",
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.CaseStatusApproved, reviewed.Status)
	assert.True(t, reviewed.ReviewedAt.Valid)
	assert.Equal(t, &admin.ID, reviewed.ReviewedBy)
}

func TestCaseUsecase_Review_FundedIsTerminal(t *testing.T) {
	userRepo := new(MockUserRepository)
	caseRepo := new(MockCaseRepository)
	uc := usecases.NewCaseUsecase(caseRepo, userRepo)

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	funded := &entities.PatientCase{ID: uuid.New(), Status: entities.CaseStatusFunded}

	userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	caseRepo.On("GetByID", context.Background(), funded.ID).Return(funded, nil).Once()

	_, err := uc.Review(context.Background(), admin.ID, funded.ID, &entities.ReviewCaseInput{
		Status: entities.CaseStatusClosed,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestCaseUsecase_Get_Visibility(t *testing.T) {
	userRepo := new(MockUserRepository)
	caseRepo := new(MockCaseRepository)
	uc := usecases.NewCaseUsecase(caseRepo, userRepo)

	owner := &entities.User{ID: uuid.New(), Role: entities.UserRolePatient}
	otherPatient := &entities.User{ID: uuid.New(), Role: entities.UserRolePatient}
	ngo := &entities.User{ID: uuid.New(), Role: entities.UserRoleNGO}

	pendingCase := &entities.PatientCase{ID: uuid.New(), PatientID: owner.ID, Status: entities.CaseStatusPending}

	// owner sees own pending case
	userRepo.On("GetByID", context.Background(), owner.ID).Return(owner, nil).Once()
	caseRepo.On("GetByID", context.Background(), pendingCase.ID).Return(pendingCase, nil).Times(3)
	got, err := uc.Get(context.Background(), owner.ID, pendingCase.ID)
	assert.NoError(t, err)
	assert.Equal(t, pendingCase.ID, got.ID)

	// another patient does not
	userRepo.On("GetByID", context.Background(), otherPatient.ID).Return(otherPatient, nil).Once()
	_, err = uc.Get(context.Background(), otherPatient.ID, pendingCase.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// an NGO cannot see a case before review
	userRepo.On("GetByID", context.Background(), ngo.ID).Return(ngo, nil).Twice()
	_, err = uc.Get(context.Background(), ngo.ID, pendingCase.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// an NGO sees it once approved
	approvedCase := &entities.PatientCase{ID: uuid.New(), PatientID: owner.ID, Status: entities.CaseStatusApproved}
	caseRepo.On("GetByID", context.Background(), approvedCase.ID).Return(approvedCase, nil).Once()
	got, err = uc.Get(context.Background(), ngo.ID, approvedCase.ID)
	assert.NoError(t, err)
	assert.Equal(t, approvedCase.ID, got.ID)
}

func TestCaseUsecase_List_PerRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	caseRepo := new(MockCaseRepository)
	uc := usecases.NewCaseUsecase(caseRepo, userRepo)

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}
	patient := &entities.User{ID: uuid.New(), Role: entities.UserRolePatient}
	ngo := &entities.User{ID: uuid.New(), Role: entities.UserRoleNGO}

	userRepo.On("GetByID", context.Background(), admin.ID).Return(admin, nil).Once()
	caseRepo.On("List", context.Background()).Return([]*entities.PatientCase{}, nil).Once()
	_, err := uc.List(context.Background(), admin.ID)
	assert.NoError(t, err)

	userRepo.On("GetByID", context.Background(), patient.ID).Return(patient, nil).Once()
	caseRepo.On("ListByPatient", context.Background(), patient.ID).Return([]*entities.PatientCase{}, nil).Once()
	_, err = uc.List(context.Background(), patient.ID)
	assert.NoError(t, err)

	userRepo.On("GetByID", context.Background(), ngo.ID).Return(ngo, nil).Once()
	caseRepo.On("ListByStatuses", context.Background(), []entities.CaseStatus{
		entities.CaseStatusApproved,
		entities.CaseStatusFunded,
	}).Return([]*entities.PatientCase{}, nil).Once()
	_, err = uc.List(context.Background(), ngo.ID)
	assert.NoError(t, err)

	caseRepo.AssertExpectations(t)
}
