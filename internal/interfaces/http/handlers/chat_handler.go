package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/interfaces/http/response"
	"medseal.backend/internal/usecases"
)

// ChatHandler handles assistant conversation endpoints
type ChatHandler struct {
	chatUsecase *usecases.ChatUsecase
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase *usecases.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// General answers a free-form question
// POST /api/v1/chat/general
func (h *ChatHandler) General(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.GeneralChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatUsecase.General(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

// Prescription answers questions about a claimed prescription
// POST /api/v1/chat/prescription
func (h *ChatHandler) Prescription(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.PrescriptionChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatUsecase.Prescription(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

// Medicine answers questions about one medicine
// POST /api/v1/chat/medicine
func (h *ChatHandler) Medicine(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.MedicineChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatUsecase.Medicine(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}
