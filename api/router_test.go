package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/constraints"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	quotes := &MockQuoteUseCase{}
	units := &MockUnitUseCase{}
	cons := &MockConstraintsUseCase{}
	router := NewRouter(zap.NewNop(), quotes, units, cons)

	units.On("GetByID", mock.Anything, int64(3)).Return(&domain.Unit{ID: 3}, nil)
	cons.On("Summary", mock.Anything, "double", "").Return(&constraints.Summary{UnitType: "double"}, nil)
	quotes.On("CreateQuote", mock.Anything, mock.Anything).Return(nil, domain.ErrQuoteInProgress)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{"GET", "/healthz", "", http.StatusOK},
		{"GET", "/api/v1/units/3", "", http.StatusOK},
		{"GET", "/api/v1/unit-types/double/constraints/summary", "", http.StatusOK},
		{"POST", "/api/v1/quotes", `{"unit_id":1,"start_date":"2026-01-01","end_date":"2026-01-02","group_size":1}`, http.StatusConflict},
		{"GET", "/api/v1/nowhere", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
