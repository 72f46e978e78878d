package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dzair-travel/skyflow/config"
	"github.com/dzair-travel/skyflow/internal/airports"
	"github.com/dzair-travel/skyflow/internal/amadeus"
	"github.com/dzair-travel/skyflow/internal/bootstrap"
	"github.com/dzair-travel/skyflow/internal/cache"
	"github.com/dzair-travel/skyflow/internal/currency"
	"github.com/dzair-travel/skyflow/internal/kafka"
	"github.com/dzair-travel/skyflow/internal/repository"
	"github.com/dzair-travel/skyflow/internal/service/booking"
	"github.com/dzair-travel/skyflow/internal/service/search"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	converter, err := currency.NewConverter(cfg.Booking.EURToDZDRate, cfg.Booking.DisplayLocale)
	if err != nil {
		log.Fatalf("build currency converter: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Amadeus.Timeout()}
	tokens := amadeus.NewTokenCache(cfg.Amadeus.BaseURL, cfg.Amadeus.APIKey, cfg.Amadeus.APISecret, httpClient)
	gateway := amadeus.NewClient(cfg.Amadeus.BaseURL, tokens, httpClient)

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.SearchCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	matcher := airports.NewMatcher(airports.Directory(), cfg.Airports.HomeCountry)
	bookingRepo := repository.NewBookingRepository(pool)

	searchService := search.NewSearchService(gateway, redisCache, converter)
	bookingService := booking.NewBookingService(
		gateway,
		bookingRepo,
		converter,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithGuestBookings(cfg.Booking.AllowGuest),
	)

	if err := bootstrap.Run(ctx, cfg, searchService, bookingService, matcher); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
