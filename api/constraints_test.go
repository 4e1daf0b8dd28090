package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/constraints"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockConstraintsUseCase is a mock implementation of constraints.ConstraintsUseCase
type MockConstraintsUseCase struct {
	mock.Mock
}

func (m *MockConstraintsUseCase) Summary(ctx context.Context, unitType, acceptLanguage string) (*constraints.Summary, error) {
	args := m.Called(ctx, unitType, acceptLanguage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constraints.Summary), args.Error(1)
}

func (m *MockConstraintsUseCase) Update(ctx context.Context, settings domain.ConstraintSettings) (*domain.ConstraintSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConstraintSettings), args.Error(1)
}

func TestConstraintsHandler_summary(t *testing.T) {
	mockService := &MockConstraintsUseCase{}
	handler := NewConstraintsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "type", Value: "suite"}}
	c.Request = httptest.NewRequest("GET", "/unit-types/suite/constraints/summary", nil)
	c.Request.Header.Set("Accept-Language", "ru")

	s := &constraints.Summary{UnitType: "suite", Lines: []string{"a", "b"}, Caption: "a<br />b"}
	mockService.On("Summary", c.Request.Context(), "suite", "ru").Return(s, nil)

	handler.summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response summaryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "a<br />b", response.Caption)
	assert.Equal(t, []string{"a", "b"}, response.Lines)

	mockService.AssertExpectations(t)
}

func TestConstraintsHandler_update(t *testing.T) {
	mockService := &MockConstraintsUseCase{}
	handler := NewConstraintsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "type", Value: "suite"}}
	body, _ := json.Marshal(updateConstraintsRequest{RangeUnitEnabled: true})
	c.Request = httptest.NewRequest("PUT", "/unit-types/suite/constraints", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	settings := domain.ConstraintSettings{UnitType: "suite", RangeUnitEnabled: true}
	mockService.On("Update", c.Request.Context(), settings).Return(&settings, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response constraintsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.RangeUnitEnabled)
	assert.False(t, response.RangeTypeEnabled)

	mockService.AssertExpectations(t)
}

func TestConstraintsHandler_update_BadBody(t *testing.T) {
	mockService := &MockConstraintsUseCase{}
	handler := NewConstraintsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "type", Value: "suite"}}
	c.Request = httptest.NewRequest("PUT", "/unit-types/suite/constraints", bytes.NewReader([]byte("{")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
