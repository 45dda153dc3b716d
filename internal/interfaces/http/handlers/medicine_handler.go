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

// MedicineHandler handles medicine repository endpoints
type MedicineHandler struct {
	medicineUsecase *usecases.MedicineUsecase
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(medicineUsecase *usecases.MedicineUsecase) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
	}
}

// Create adds a medicine
// POST /api/v1/medicines
func (h *MedicineHandler) Create(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.CreateMedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	medicine, err := h.medicineUsecase.Create(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, medicine)
}

// Update rewrites a medicine
// PUT /api/v1/medicines/:id
func (h *MedicineHandler) Update(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid medicine ID"))
		return
	}

	var input entities.CreateMedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	medicine, err := h.medicineUsecase.Update(c.Request.Context(), id, medicineID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, medicine)
}

// SetActive toggles a medicine's active flag
// PATCH /api/v1/medicines/:id/active
func (h *MedicineHandler) SetActive(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid medicine ID"))
		return
	}

	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	medicine, err := h.medicineUsecase.SetActive(c.Request.Context(), id, medicineID, *input.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, medicine)
}

// Get returns one medicine
// GET /api/v1/medicines/:id
func (h *MedicineHandler) Get(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid medicine ID"))
		return
	}

	medicine, err := h.medicineUsecase.Get(c.Request.Context(), id, medicineID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, medicine)
}

// ListMine returns the calling doctor's medicines
// GET /api/v1/medicines
func (h *MedicineHandler) ListMine(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	medicines, err := h.medicineUsecase.ListMine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"medicines": medicines})
}
