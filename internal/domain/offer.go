package domain

import "encoding/json"

// FlightOffer is a supplier-priced itinerary. Only the fields this service
// reads are typed; the full supplier payload is kept verbatim in Raw and is
// what gets sent back on pricing and order-creation calls.
type FlightOffer struct {
	ID                     string      `json:"id"`
	Price                  OfferPrice  `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`

	Raw json.RawMessage `json:"-"`
}

type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

func (o *FlightOffer) UnmarshalJSON(data []byte) error {
	type alias FlightOffer
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = FlightOffer(a)
	o.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the supplier payload untouched so that offers survive
// the round trip to pricing and order creation byte for byte.
func (o FlightOffer) MarshalJSON() ([]byte, error) {
	if len(o.Raw) > 0 {
		return o.Raw, nil
	}
	type alias FlightOffer
	return json.Marshal(alias(o))
}

// FirstSegment and LastSegment address the outbound itinerary. Both return
// false when the offer has no segments.
func (o *FlightOffer) FirstSegment() (Segment, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return Segment{}, false
	}
	return o.Itineraries[0].Segments[0], true
}

func (o *FlightOffer) LastSegment() (Segment, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return Segment{}, false
	}
	segments := o.Itineraries[0].Segments
	return segments[len(segments)-1], true
}

// PricingResult is the supplier's authoritative repricing of an offer. The
// offer inside it, not the one the caller sent, is what may be booked.
type PricingResult struct {
	FlightOffers []FlightOffer
	Raw          json.RawMessage
}

// PricedOffer returns the repriced offer when the supplier confirmed one.
func (p *PricingResult) PricedOffer() (*FlightOffer, bool) {
	if len(p.FlightOffers) == 0 {
		return nil, false
	}
	return &p.FlightOffers[0], true
}

// AvailabilityResult is a read-only availability snapshot, passed through to
// the caller as-is.
type AvailabilityResult struct {
	Raw   json.RawMessage
	Count int
}

// FlightOrder is the supplier's response to order creation. PNRReference is
// the proof of booking; an order without one is treated as a failure.
type FlightOrder struct {
	PNRReference    string
	SupplierOrderID string
	Raw             json.RawMessage
}

type Traveler struct {
	ID          string       `json:"id"`
	Name        TravelerName `json:"name"`
	DateOfBirth string       `json:"dateOfBirth"`
	Gender      string       `json:"gender"`
	Contact     Contact      `json:"contact"`
}

type TravelerName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Contact struct {
	Email  string  `json:"emailAddress"`
	Phones []Phone `json:"phones"`
}

type Phone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}
