package api

import (
	"errors"
	"net/http"

	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/dzair-travel/skyflow/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookRequest struct {
	FlightOffer domain.FlightOffer `json:"flightOffer"`
	Travelers   []domain.Traveler  `json:"travelers"`
	AccountID   string             `json:"accountId"`
}

type bookResponse struct {
	PNR       string `json:"pnr"`
	OrderID   string `json:"orderId"`
	Persisted bool   `json:"persisted"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.GET("/:pnr", h.get)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Book(c.Request.Context(), booking.BookInput{
		Offer:     req.FlightOffer,
		Travelers: req.Travelers,
		AccountID: req.AccountID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookResponse{
		PNR:       result.PNRReference,
		OrderID:   result.SupplierOrderID,
		Persisted: result.Persisted,
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	record, err := h.service.GetByPNR(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
