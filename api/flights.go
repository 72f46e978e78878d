package api

import (
	"net/http"
	"strconv"

	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/dzair-travel/skyflow/internal/service/search"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service search.SearchUseCase
}

type offerRequest struct {
	FlightOffer domain.FlightOffer `json:"flightOffer"`
}

func NewFlightHandler(service search.SearchUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.POST("/confirm-price", h.confirmPrice)
	router.POST("/seat-availability", h.seatAvailability)
}

func (h *FlightHandler) search(c *gin.Context) {
	adults, _ := strconv.Atoi(c.DefaultQuery("adults", "1"))
	maxResults, _ := strconv.Atoi(c.DefaultQuery("max", "0"))

	offers, err := h.service.Search(c.Request.Context(), search.SearchInput{
		Origin:        c.Query("origin"),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("departureDate"),
		ReturnDate:    c.Query("returnDate"),
		Adults:        adults,
		TravelClass:   c.DefaultQuery("travelClass", "ECONOMY"),
		MaxResults:    maxResults,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": offers})
}

func (h *FlightHandler) confirmPrice(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pricing, err := h.service.ConfirmPrice(c.Request.Context(), &req.FlightOffer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", pricing.Raw)
}

func (h *FlightHandler) seatAvailability(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	availability, err := h.service.CheckAvailability(c.Request.Context(), &req.FlightOffer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", availability.Raw)
}
