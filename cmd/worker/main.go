package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dzair-travel/skyflow/config"
	"github.com/dzair-travel/skyflow/internal/email"
	"github.com/dzair-travel/skyflow/internal/kafka"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
			if !event.Persisted {
				log.Printf("unpersisted booking PNR %s order %s, reconcile against the supplier", event.PNRReference, event.SupplierOrderID)
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	s := <-sig
	log.Printf("received signal %v, shutting down", s)
}
