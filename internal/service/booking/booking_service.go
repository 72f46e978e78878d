package booking

import (
	"context"
	"log"
	"time"

	"github.com/dzair-travel/skyflow/internal/currency"
	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/dzair-travel/skyflow/internal/kafka"
	"github.com/dzair-travel/skyflow/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*BookingResult, error)
	GetByPNR(ctx context.Context, pnr string) (*domain.BookingRecord, error)
}

// Gateway is the slice of the supplier client the orchestrator needs.
type Gateway interface {
	ConfirmPrice(ctx context.Context, offer *domain.FlightOffer) (*domain.PricingResult, error)
	CreateOrder(ctx context.Context, offer *domain.FlightOffer, travelers []domain.Traveler) (*domain.FlightOrder, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	Offer     domain.FlightOffer `json:"flightOffer"`
	Travelers []domain.Traveler  `json:"travelers"`
	AccountID string             `json:"accountId"`
}

type BookingResult struct {
	PNRReference    string `json:"pnr"`
	SupplierOrderID string `json:"orderId"`
	Persisted       bool   `json:"persisted"`
}

type BookingService struct {
	gateway            Gateway
	records            repository.BookingRepository
	converter          *currency.Converter
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	allowGuest         bool
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithGuestBookings permits bookings without a caller-supplied account
// identity. Off by default: a guest booking has no accountable traveler
// identity beyond the PNR itself.
func WithGuestBookings(allow bool) BookingServiceOption {
	return func(s *BookingService) {
		s.allowGuest = allow
	}
}

func NewBookingService(
	gateway Gateway,
	records repository.BookingRepository,
	converter *currency.Converter,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		gateway:      gateway,
		records:      records,
		converter:    converter,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book drives the quote -> price-confirm -> order-create -> persist chain.
// The order is fixed: pricing is always reconfirmed before the order, and
// the order always precedes the local write. Once the supplier issues a PNR
// the booking is committed; a failed local write downgrades the result to
// persisted=false but never fails the call, since telling the traveler
// "booking failed" after a real PNR risks a duplicate booking.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*BookingResult, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	pricing, err := s.gateway.ConfirmPrice(ctx, &input.Offer)
	if err != nil {
		return nil, err
	}
	priced, ok := pricing.PricedOffer()
	if !ok {
		return nil, domain.ErrOfferExpired
	}

	order, err := s.gateway.CreateOrder(ctx, priced, input.Travelers)
	if err != nil {
		return nil, err
	}

	record := s.buildRecord(priced, order)

	persisted := true
	if err := s.records.Create(ctx, record); err != nil {
		persisted = false
		record.Status = domain.BookingStatusConfirmedUnpersisted
		perr := &domain.PersistenceError{Err: err}
		log.Printf("booking %s: %v, reconcile out of band", record.PNRReference, perr)
		s.publish(ctx, "booking_unpersisted", record, input.Travelers, persisted)
	} else {
		s.publish(ctx, "booking_confirmed", record, input.Travelers, persisted)
	}

	return &BookingResult{
		PNRReference:    record.PNRReference,
		SupplierOrderID: record.SupplierOrderID,
		Persisted:       persisted,
	}, nil
}

func (s *BookingService) GetByPNR(ctx context.Context, pnr string) (*domain.BookingRecord, error) {
	if pnr == "" {
		return nil, &domain.ValidationError{Field: "pnr", Reason: "required"}
	}
	return s.records.GetByPNR(ctx, pnr)
}

func (s *BookingService) validate(input BookInput) error {
	if len(input.Offer.Raw) == 0 {
		return &domain.ValidationError{Field: "flightOffer", Reason: "required"}
	}
	if len(input.Travelers) == 0 {
		return &domain.ValidationError{Field: "travelers", Reason: "at least one traveler is required"}
	}
	for i, t := range input.Travelers {
		if t.Name.FirstName == "" || t.Name.LastName == "" {
			return &domain.ValidationError{Field: "travelers", Reason: "traveler name must not be empty"}
		}
		if i == 0 && t.Contact.Email == "" {
			return &domain.ValidationError{Field: "travelers", Reason: "lead traveler email is required"}
		}
	}
	if input.AccountID == "" {
		if !s.allowGuest {
			return &domain.ValidationError{Field: "accountId", Reason: "guest bookings are disabled"}
		}
		log.Printf("WARNING: booking without account identity, proceeding as guest")
	}
	return nil
}

func (s *BookingService) buildRecord(offer *domain.FlightOffer, order *domain.FlightOrder) *domain.BookingRecord {
	record := &domain.BookingRecord{
		ID:              uuid.NewString(),
		PNRReference:    order.PNRReference,
		SupplierOrderID: order.SupplierOrderID,
		TotalPriceDZD:   0,
		Status:          domain.BookingStatusConfirmed,
		OfferSnapshot:   offer.Raw,
		CreatedAt:       time.Now(),
	}

	if first, ok := offer.FirstSegment(); ok {
		record.Origin = first.Departure.IATACode
		record.DepartureDate = first.Departure.At
	}
	if last, ok := offer.LastSegment(); ok {
		record.Destination = last.Arrival.IATACode
	}

	dzd, err := s.converter.ConvertTotal(offer.Price.Total)
	if err != nil {
		log.Printf("booking %s: unparseable price total %q: %v", order.PNRReference, offer.Price.Total, err)
	} else {
		record.TotalPriceDZD = dzd
	}
	return record
}

func (s *BookingService) publish(ctx context.Context, eventType string, record *domain.BookingRecord, travelers []domain.Traveler, persisted bool) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	email := ""
	if len(travelers) > 0 {
		email = travelers[0].Contact.Email
	}
	event := kafka.BookingEvent{
		Type:            eventType,
		PNRReference:    record.PNRReference,
		SupplierOrderID: record.SupplierOrderID,
		Origin:          record.Origin,
		Destination:     record.Destination,
		DepartureDate:   record.DepartureDate,
		TotalPriceDZD:   record.TotalPriceDZD,
		Status:          string(record.Status),
		Persisted:       persisted,
		Email:           email,
		OccurredAt:      time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, record.PNRReference, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for PNR %s: %v", eventType, record.PNRReference, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, record.PNRReference, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for PNR %s: %v", eventType, record.PNRReference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
