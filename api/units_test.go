package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUnitUseCase is a mock implementation of units.UnitUseCase
type MockUnitUseCase struct {
	mock.Mock
}

func (m *MockUnitUseCase) List(ctx context.Context) ([]domain.Unit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Unit), args.Error(1)
}

func (m *MockUnitUseCase) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func TestUnitHandler_list(t *testing.T) {
	mockService := &MockUnitUseCase{}
	handler := NewUnitHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/units", nil)

	units := []domain.Unit{
		{ID: 1, Type: "double", Name: "Sea view", BaseOccupancy: 2, MaxOccupancy: 3, NightlyRateCents: 120_00, Currency: "EUR"},
	}
	mockService.On("List", c.Request.Context()).Return(units, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []unitResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Sea view", response[0].Name)

	mockService.AssertExpectations(t)
}

func TestUnitHandler_get(t *testing.T) {
	mockService := &MockUnitUseCase{}
	handler := NewUnitHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/units/1", nil)

	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(&domain.Unit{ID: 1, NightlyRateCents: 99_00}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_get_Errors(t *testing.T) {
	mockService := &MockUnitUseCase{}
	handler := NewUnitHandler(mockService)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/units/abc", nil)
	handler.get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Request = httptest.NewRequest("GET", "/units/5", nil)
	mockService.On("GetByID", c.Request.Context(), int64(5)).Return(nil, domain.ErrNotFound)
	handler.get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
