package api

import (
	"errors"
	"net/http"

	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Validation
// and expired-offer failures are the caller's to fix; everything else is an
// upstream or internal fault.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		authErr       *domain.AuthenticationError
		supplierErr   *domain.SupplierError
		orderErr      *domain.OrderCreationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, domain.ErrOfferExpired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &orderErr):
		// The supplier may hold an order we cannot reference. Spell the
		// ambiguity out so callers do not blindly retry into a duplicate.
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  orderErr.Error(),
			"advice": "the order outcome is ambiguous; check for duplicate bookings before retrying",
		})
	case errors.As(err, &authErr), errors.As(err, &supplierErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
