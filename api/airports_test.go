package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dzair-travel/skyflow/internal/airports"
	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportHandler_search(t *testing.T) {
	matcher := airports.NewMatcher(airports.Directory(), "DZ")
	handler := NewAirportHandler(matcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airports/search?q=ALG", nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Airports []domain.Airport `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Airports)
	assert.Equal(t, "ALG", resp.Airports[0].IATACode)
}

func TestAirportHandler_search_EmptyQuery(t *testing.T) {
	matcher := airports.NewMatcher(airports.Directory(), "DZ")
	handler := NewAirportHandler(matcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airports/search", nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Airports []domain.Airport `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.LessOrEqual(t, len(resp.Airports), 10)
	for _, a := range resp.Airports {
		assert.Equal(t, "DZ", a.CountryCode)
	}
}
