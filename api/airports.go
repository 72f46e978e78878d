package api

import (
	"net/http"

	"github.com/dzair-travel/skyflow/internal/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	matcher *airports.Matcher
}

func NewAirportHandler(matcher *airports.Matcher) *AirportHandler {
	return &AirportHandler{matcher: matcher}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

func (h *AirportHandler) search(c *gin.Context) {
	results := h.matcher.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"airports": results})
}
