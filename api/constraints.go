package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/constraints"
	"github.com/gin-gonic/gin"
)

type ConstraintsHandler struct {
	service constraints.ConstraintsUseCase
}

type updateConstraintsRequest struct {
	RangeUnitEnabled bool `json:"range_unit_enabled"`
	RangeTypeEnabled bool `json:"range_type_enabled"`
}

type constraintsResponse struct {
	UnitType         string `json:"unit_type"`
	RangeUnitEnabled bool   `json:"range_unit_enabled"`
	RangeTypeEnabled bool   `json:"range_type_enabled"`
}

type summaryResponse struct {
	UnitType string   `json:"unit_type"`
	Lines    []string `json:"lines"`
	Caption  string   `json:"caption"`
}

func NewConstraintsHandler(service constraints.ConstraintsUseCase) *ConstraintsHandler {
	return &ConstraintsHandler{service: service}
}

func (h *ConstraintsHandler) Register(router *gin.RouterGroup) {
	router.GET("/:type/constraints/summary", h.summary)
	router.PUT("/:type/constraints", h.update)
}

func (h *ConstraintsHandler) summary(c *gin.Context) {
	s, err := h.service.Summary(c.Request.Context(), c.Param("type"), c.GetHeader("Accept-Language"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaryResponse{UnitType: s.UnitType, Lines: s.Lines, Caption: s.Caption})
}

func (h *ConstraintsHandler) update(c *gin.Context) {
	var req updateConstraintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.service.Update(c.Request.Context(), domain.ConstraintSettings{
		UnitType:         c.Param("type"),
		RangeUnitEnabled: req.RangeUnitEnabled,
		RangeTypeEnabled: req.RangeTypeEnabled,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, constraintsResponse{
		UnitType:         saved.UnitType,
		RangeUnitEnabled: saved.RangeUnitEnabled,
		RangeTypeEnabled: saved.RangeTypeEnabled,
	})
}
