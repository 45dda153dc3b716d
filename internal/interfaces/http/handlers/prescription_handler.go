package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/interfaces/http/response"
	"medseal.backend/internal/usecases"
)

// PrescriptionHandler handles prescription endpoints
type PrescriptionHandler struct {
	prescriptionUsecase *usecases.PrescriptionUsecase
}

// NewPrescriptionHandler creates a new prescription handler
func NewPrescriptionHandler(prescriptionUsecase *usecases.PrescriptionUsecase) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
	}
}

// Create issues a prescription
// POST /api/v1/prescriptions
func (h *PrescriptionHandler) Create(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.CreatePrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, prescription)
}

// Claim hands a prescription to the calling patient
// POST /api/v1/prescriptions/claim
func (h *PrescriptionHandler) Claim(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.ClaimPrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	prescription, err := h.prescriptionUsecase.Claim(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, prescription)
}

// Get returns one prescription
// GET /api/v1/prescriptions/:id
func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	prescriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid prescription ID"))
		return
	}

	prescription, err := h.prescriptionUsecase.Get(c.Request.Context(), id, prescriptionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, prescription)
}

// ListMine returns the calling doctor's issued prescriptions
// GET /api/v1/prescriptions
func (h *PrescriptionHandler) ListMine(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListMine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"prescriptions": prescriptions})
}
