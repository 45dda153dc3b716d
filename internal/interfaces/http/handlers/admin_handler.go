package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/interfaces/http/response"
	"medseal.backend/internal/usecases"
	"medseal.backend/pkg/utils"
)

// AdminHandler handles admin analytics endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// respondUserPage applies page/limit query parameters to a user listing.
// limit=0 (the default) returns everything on one page.
func respondUserPage(c *gin.Context, users []*entities.User) {
	var q utils.PaginationParams
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	p := utils.GetPaginationParams(q.Page, q.Limit)
	meta := utils.CalculateMeta(int64(len(users)), p.Page, p.Limit)
	if p.Limit > 0 {
		start := p.CalculateOffset()
		if start > len(users) {
			start = len(users)
		}
		end := start + p.Limit
		if end > len(users) {
			end = len(users)
		}
		users = users[start:end]
	}

	response.Success(c, http.StatusOK, gin.H{"users": users, "meta": meta})
}

// ListDoctors returns all doctor accounts
// GET /api/v1/admin/doctors
func (h *AdminHandler) ListDoctors(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	users, err := h.adminUsecase.ListDoctors(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondUserPage(c, users)
}

// ListPatients returns all patient accounts
// GET /api/v1/admin/patients
func (h *AdminHandler) ListPatients(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	users, err := h.adminUsecase.ListPatients(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondUserPage(c, users)
}

// ListNGOs returns all NGO accounts
// GET /api/v1/admin/ngos
func (h *AdminHandler) ListNGOs(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	users, err := h.adminUsecase.ListNGOs(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondUserPage(c, users)
}

// GetUserStats summarizes one user's activity
// GET /api/v1/admin/users/:id/stats
func (h *AdminHandler) GetUserStats(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	stats, err := h.adminUsecase.GetUserStats(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// SystemOverview aggregates platform-wide counts
// GET /api/v1/admin/overview
func (h *AdminHandler) SystemOverview(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	overview, err := h.adminUsecase.SystemOverview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, overview)
}
