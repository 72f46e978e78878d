package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dzair-travel/skyflow/api"
	"github.com/dzair-travel/skyflow/config"
	"github.com/dzair-travel/skyflow/internal/airports"
	"github.com/dzair-travel/skyflow/internal/service/booking"
	"github.com/dzair-travel/skyflow/internal/service/search"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, searchSvc search.SearchUseCase, bookingSvc booking.BookingUseCase, matcher *airports.Matcher) error {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	apiGroup := router.Group("/api")
	api.NewAirportHandler(matcher).Register(apiGroup.Group("/airports"))
	api.NewFlightHandler(searchSvc).Register(apiGroup.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(apiGroup.Group("/bookings"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
