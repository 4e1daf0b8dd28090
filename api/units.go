package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/units"
	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	service units.UnitUseCase
}

type unitResponse struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Name             string `json:"name"`
	BaseOccupancy    int    `json:"base_occupancy"`
	MaxOccupancy     int    `json:"max_occupancy"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	Currency         string `json:"currency"`
}

func NewUnitHandler(service units.UnitUseCase) *UnitHandler {
	return &UnitHandler{service: service}
}

func (h *UnitHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *UnitHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]unitResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, toUnitResponse(&u))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UnitHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUnitResponse(u))
}

func toUnitResponse(u *domain.Unit) unitResponse {
	return unitResponse{
		ID:               u.ID,
		Type:             u.Type,
		Name:             u.Name,
		BaseOccupancy:    u.BaseOccupancy,
		MaxOccupancy:     u.MaxOccupancy,
		NightlyRateCents: u.NightlyRateCents,
		Currency:         u.Currency,
	}
}
