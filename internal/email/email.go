package email

import (
	"context"
	"fmt"

	"github.com/dzair-travel/skyflow/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for PNR %s (%s -> %s)\n", event.Email, event.Type, event.PNRReference, event.Origin, event.Destination)
	return nil
}
