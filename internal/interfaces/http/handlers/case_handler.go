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

// CaseHandler handles patient case endpoints
type CaseHandler struct {
	caseUsecase *usecases.CaseUsecase
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseUsecase *usecases.CaseUsecase) *CaseHandler {
	return &CaseHandler{
		caseUsecase: caseUsecase,
	}
}

// Submit files a new case
// POST /api/v1/cases
func (h *CaseHandler) Submit(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.SubmitCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	patientCase, err := h.caseUsecase.Submit(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, patientCase)
}

// Review records an admin review decision
// POST /api/v1/cases/:id/review
func (h *CaseHandler) Review(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid case ID"))
		return
	}

	var input entities.ReviewCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	patientCase, err := h.caseUsecase.Review(c.Request.Context(), id, caseID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, patientCase)
}

// Get returns one case
// GET /api/v1/cases/:id
func (h *CaseHandler) Get(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid case ID"))
		return
	}

	patientCase, err := h.caseUsecase.Get(c.Request.Context(), id, caseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, patientCase)
}

// List returns the cases visible to the caller. ?status=pending narrows to
// the admin review queue.
// GET /api/v1/cases
func (h *CaseHandler) List(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var (
		cases []*entities.PatientCase
		err   error
	)
	if c.Query("status") == "pending" {
		cases, err = h.caseUsecase.ListPending(c.Request.Context(), id)
	} else {
		cases, err = h.caseUsecase.List(c.Request.Context(), id)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cases": cases})
}
