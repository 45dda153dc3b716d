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

// VerificationHandler handles credential verification endpoints
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// Submit files a verification request
// POST /api/v1/verifications
func (h *VerificationHandler) Submit(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.SubmitVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.verificationUsecase.Submit(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// Process records an admin decision
// POST /api/v1/verifications/:id/process
func (h *VerificationHandler) Process(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid verification request ID"))
		return
	}

	var input entities.ProcessVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.verificationUsecase.Process(c.Request.Context(), id, requestID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// Get returns one verification request
// GET /api/v1/verifications/:id
func (h *VerificationHandler) Get(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid verification request ID"))
		return
	}

	request, err := h.verificationUsecase.Get(c.Request.Context(), id, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// List returns verification requests. Supports ?status=pending and
// ?type=DOCTOR|NGO filters.
// GET /api/v1/verifications
func (h *VerificationHandler) List(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var (
		requests []*entities.VerificationRequest
		err      error
	)
	switch {
	case c.Query("status") == "pending":
		requests, err = h.verificationUsecase.ListPending(ctx, id)
	case c.Query("type") != "":
		requests, err = h.verificationUsecase.ListByType(ctx, id, entities.VerificationType(c.Query("type")))
	default:
		requests, err = h.verificationUsecase.List(ctx, id)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}
