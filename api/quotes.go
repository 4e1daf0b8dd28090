package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/quote"
	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	service quote.QuoteUseCase
}

type createQuoteRequest struct {
	UnitID       int64  `json:"unit_id" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	GroupSize    int    `json:"group_size" binding:"required"`
	Children     int    `json:"children"`
	ChildrenAges []int  `json:"children_ages"`
}

type quoteResponse struct {
	ID              string                     `json:"id"`
	UnitID          int64                      `json:"unit_id"`
	StartDate       string                     `json:"start_date"`
	EndDate         string                     `json:"end_date"`
	Nights          int                        `json:"nights"`
	GroupSize       int                        `json:"group_size"`
	Children        int                        `json:"children"`
	ChildrenAges    []int                      `json:"children_ages"`
	BasePriceCents  int64                      `json:"base_price_cents"`
	FinalPriceCents int64                      `json:"final_price_cents"`
	Currency        string                     `json:"currency"`
	Adjustments     []domain.AppliedAdjustment `json:"adjustments"`
	Status          string                     `json:"status"`
	ExpiresAt       string                     `json:"expires_at"`
}

func NewQuoteHandler(service quote.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{service: service}
}

func (h *QuoteHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *QuoteHandler) create(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid start_date %q", req.StartDate)})
		return
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid end_date %q", req.EndDate)})
		return
	}

	created, err := h.service.CreateQuote(c.Request.Context(), quote.CreateQuoteInput{
		UnitID:    req.UnitID,
		StartDate: start,
		EndDate:   end,
		Params: domain.BookingParameters{
			GroupSize:    req.GroupSize,
			Children:     req.Children,
			ChildrenAges: req.ChildrenAges,
		},
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuoteResponse(created))
}

func (h *QuoteHandler) get(c *gin.Context) {
	q, err := h.service.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(q))
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	ages := q.Params.ChildrenAges
	if ages == nil {
		ages = []int{}
	}
	adjustments := q.Adjustments
	if adjustments == nil {
		adjustments = []domain.AppliedAdjustment{}
	}
	return quoteResponse{
		ID:              q.ID,
		UnitID:          q.UnitID,
		StartDate:       q.StartDate.Format(time.DateOnly),
		EndDate:         q.EndDate.Format(time.DateOnly),
		Nights:          q.Nights,
		GroupSize:       q.Params.GroupSize,
		Children:        q.Params.Children,
		ChildrenAges:    ages,
		BasePriceCents:  q.BasePriceCents,
		FinalPriceCents: q.FinalPriceCents,
		Currency:        q.Currency,
		Adjustments:     adjustments,
		Status:          string(q.Status),
		ExpiresAt:       q.ExpiresAt.Format(time.RFC3339),
	}
}
