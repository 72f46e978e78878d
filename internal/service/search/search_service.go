package search

import (
	"context"
	"fmt"
	"log"

	"github.com/dzair-travel/skyflow/internal/amadeus"
	"github.com/dzair-travel/skyflow/internal/currency"
	"github.com/dzair-travel/skyflow/internal/domain"
)

type SearchUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]PricedOffer, error)
	ConfirmPrice(ctx context.Context, offer *domain.FlightOffer) (*domain.PricingResult, error)
	CheckAvailability(ctx context.Context, offer *domain.FlightOffer) (*domain.AvailabilityResult, error)
}

type Gateway interface {
	SearchOffers(ctx context.Context, params amadeus.SearchParams) ([]domain.FlightOffer, error)
	ConfirmPrice(ctx context.Context, offer *domain.FlightOffer) (*domain.PricingResult, error)
	CheckAvailability(ctx context.Context, offer *domain.FlightOffer) (*domain.AvailabilityResult, error)
}

type Cache interface {
	GetOffers(ctx context.Context, key string) ([]domain.FlightOffer, error)
	SetOffers(ctx context.Context, key string, offers []domain.FlightOffer) error
}

type SearchInput struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	Adults        int    `json:"adults"`
	TravelClass   string `json:"travelClass"`
	MaxResults    int    `json:"maxResults"`
}

// PricedOffer is a supplier offer annotated with its display price in DZD.
// The annotation is derived, never stored back into the offer payload.
type PricedOffer struct {
	Offer        domain.FlightOffer `json:"offer"`
	PriceDZD     int64              `json:"price_dzd"`
	FormattedDZD string             `json:"price_dzd_formatted"`
}

type SearchService struct {
	gateway   Gateway
	cache     Cache
	converter *currency.Converter
}

func NewSearchService(gateway Gateway, cache Cache, converter *currency.Converter) *SearchService {
	return &SearchService{gateway: gateway, cache: cache, converter: converter}
}

// Search validates the query, fetches offers (cache first) and annotates
// each with its DZD price. Upstream failures surface as typed errors; there
// is deliberately no fabricated fallback data.
func (s *SearchService) Search(ctx context.Context, input SearchInput) ([]PricedOffer, error) {
	if input.Origin == "" {
		return nil, &domain.ValidationError{Field: "origin", Reason: "required"}
	}
	if input.Destination == "" {
		return nil, &domain.ValidationError{Field: "destination", Reason: "required"}
	}
	if input.DepartureDate == "" {
		return nil, &domain.ValidationError{Field: "departureDate", Reason: "required"}
	}
	if input.Adults <= 0 {
		input.Adults = 1
	}

	key := cacheKey(input)
	if s.cache != nil {
		if cached, err := s.cache.GetOffers(ctx, key); err == nil && cached != nil {
			return s.annotate(cached)
		}
	}

	offers, err := s.gateway.SearchOffers(ctx, amadeus.SearchParams{
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		Adults:        input.Adults,
		TravelClass:   input.TravelClass,
		MaxResults:    input.MaxResults,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetOffers(ctx, key, offers); err != nil {
			log.Printf("offers cache write failed: %v", err)
		}
	}
	return s.annotate(offers)
}

func (s *SearchService) ConfirmPrice(ctx context.Context, offer *domain.FlightOffer) (*domain.PricingResult, error) {
	if offer == nil || len(offer.Raw) == 0 {
		return nil, &domain.ValidationError{Field: "flightOffer", Reason: "required"}
	}
	return s.gateway.ConfirmPrice(ctx, offer)
}

func (s *SearchService) CheckAvailability(ctx context.Context, offer *domain.FlightOffer) (*domain.AvailabilityResult, error) {
	if offer == nil || len(offer.Raw) == 0 {
		return nil, &domain.ValidationError{Field: "flightOffer", Reason: "required"}
	}
	return s.gateway.CheckAvailability(ctx, offer)
}

func (s *SearchService) annotate(offers []domain.FlightOffer) ([]PricedOffer, error) {
	priced := make([]PricedOffer, 0, len(offers))
	for _, offer := range offers {
		dzd, err := s.converter.ConvertTotal(offer.Price.Total)
		if err != nil {
			return nil, &domain.SupplierError{Message: fmt.Sprintf("offer %s: %v", offer.ID, err)}
		}
		priced = append(priced, PricedOffer{
			Offer:        offer,
			PriceDZD:     dzd,
			FormattedDZD: s.converter.Format(dzd),
		})
	}
	return priced, nil
}

func cacheKey(input SearchInput) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d:%s:%d", input.Origin, input.Destination, input.DepartureDate, input.ReturnDate, input.Adults, input.TravelClass, input.MaxResults)
}

var _ SearchUseCase = (*SearchService)(nil)
