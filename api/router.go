package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/logger"
	"github.com/Domenick1991/roombooking/internal/service/constraints"
	"github.com/Domenick1991/roombooking/internal/service/quote"
	"github.com/Domenick1991/roombooking/internal/service/units"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter mounts every handler under /api/v1.
func NewRouter(log *zap.Logger, quotes quote.QuoteUseCase, unitSvc units.UnitUseCase, constraintSvc constraints.ConstraintsUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	NewQuoteHandler(quotes).Register(v1.Group("/quotes"))
	NewUnitHandler(unitSvc).Register(v1.Group("/units"))
	NewConstraintsHandler(constraintSvc).Register(v1.Group("/unit-types"))
	return router
}
