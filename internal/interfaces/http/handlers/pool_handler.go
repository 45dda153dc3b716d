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

// PoolHandler handles contribution pool endpoints
type PoolHandler struct {
	poolUsecase *usecases.PoolUsecase
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(poolUsecase *usecases.PoolUsecase) *PoolHandler {
	return &PoolHandler{
		poolUsecase: poolUsecase,
	}
}

// Create opens a contribution pool
// POST /api/v1/pools
func (h *PoolHandler) Create(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var input entities.CreatePoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pool, err := h.poolUsecase.CreatePool(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pool)
}

// Contribute adds funds to a pool
// POST /api/v1/pools/:id/contributions
func (h *PoolHandler) Contribute(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid pool ID"))
		return
	}

	var input entities.ContributeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	contribution, err := h.poolUsecase.Contribute(c.Request.Context(), id, poolID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, contribution)
}

// Get returns one pool. Public, no authentication required.
// GET /api/v1/pools/:id
func (h *PoolHandler) Get(c *gin.Context) {
	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid pool ID"))
		return
	}

	pool, err := h.poolUsecase.Get(c.Request.Context(), poolID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pool)
}

// List returns pools. ?active=true narrows to open pools, ?ngo=<id> to one
// NGO's pools.
// GET /api/v1/pools
func (h *PoolHandler) List(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var (
		pools []*entities.ContributionPool
		err   error
	)
	switch {
	case c.Query("active") == "true":
		pools, err = h.poolUsecase.ListActive(ctx, id)
	case c.Query("ngo") != "":
		var ngoID uuid.UUID
		ngoID, err = uuid.Parse(c.Query("ngo"))
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid NGO ID"))
			return
		}
		pools, err = h.poolUsecase.ListByNGO(ctx, id, ngoID)
	default:
		pools, err = h.poolUsecase.List(ctx, id)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pools": pools})
}

// ListContributions returns a pool's contribution history
// GET /api/v1/pools/:id/contributions
func (h *PoolHandler) ListContributions(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid pool ID"))
		return
	}

	contributions, err := h.poolUsecase.ListContributions(c.Request.Context(), id, poolID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contributions": contributions})
}

// ListMyContributions returns the caller's own contribution history
// GET /api/v1/contributions
func (h *PoolHandler) ListMyContributions(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	contributions, err := h.poolUsecase.ListMyContributions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contributions": contributions})
}
