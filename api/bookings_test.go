package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/dzair-travel/skyflow/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Book(ctx context.Context, input booking.BookInput) (*booking.BookingResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) GetByPNR(ctx context.Context, pnr string) (*domain.BookingRecord, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRecord), args.Error(1)
}

func bookBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body := map[string]interface{}{
		"flightOffer": json.RawMessage(`{"id":"1","price":{"total":"200.00","currency":"EUR"}}`),
		"travelers": []map[string]interface{}{{
			"id":   "1",
			"name": map[string]string{"firstName": "AMINA", "lastName": "BENALI"},
			"contact": map[string]interface{}{
				"emailAddress": "amina@example.com",
			},
		}},
		"accountId": "acc-42",
	}
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewBuffer(encoded)
}

func TestBookingHandler_book(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings/", bookBody(t))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &booking.BookingResult{PNRReference: "QVZ8RT", SupplierOrderID: "eJzTd9f3s", Persisted: true}
	mockService.On("Book", c.Request.Context(), mock.Anything).Return(result, nil)

	handler.book(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp bookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "QVZ8RT", resp.PNR)
	assert.Equal(t, "eJzTd9f3s", resp.OrderID)
	assert.True(t, resp.Persisted)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_book_UnpersistedStillSucceeds(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings/", bookBody(t))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &booking.BookingResult{PNRReference: "QVZ8RT", SupplierOrderID: "eJzTd9f3s", Persisted: false}
	mockService.On("Book", c.Request.Context(), mock.Anything).Return(result, nil)

	handler.book(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp bookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Persisted)
}

func TestBookingHandler_book_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", &domain.ValidationError{Field: "travelers", Reason: "required"}, http.StatusBadRequest},
		{"offer expired", domain.ErrOfferExpired, http.StatusConflict},
		{"order creation ambiguous", &domain.OrderCreationError{Message: "no PNR"}, http.StatusBadGateway},
		{"supplier error", &domain.SupplierError{StatusCode: 500, Message: "down"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/bookings/", bookBody(t))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("Book", c.Request.Context(), mock.Anything).Return(nil, tt.err)

			handler.book(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestBookingHandler_book_AmbiguousOrderCarriesAdvice(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings/", bookBody(t))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Book", c.Request.Context(), mock.Anything).Return(nil, &domain.OrderCreationError{SupplierOrderID: "ord-9", Message: "no PNR"})

	handler.book(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["advice"], "duplicate")
}

func TestBookingHandler_get(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pnr", Value: "QVZ8RT"}}
	c.Request = httptest.NewRequest("GET", "/bookings/QVZ8RT", nil)

	record := &domain.BookingRecord{PNRReference: "QVZ8RT", Status: domain.BookingStatusConfirmed}
	mockService.On("GetByPNR", c.Request.Context(), "QVZ8RT").Return(record, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
