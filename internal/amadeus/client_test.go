package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenSource struct {
	tokenCalls  int32
	invalidated int32
}

func (s *stubTokenSource) Token(ctx context.Context) (string, error) {
	atomic.AddInt32(&s.tokenCalls, 1)
	return "test-token", nil
}

func (s *stubTokenSource) Invalidate() {
	atomic.AddInt32(&s.invalidated, 1)
}

func TestClient_SearchOffers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/shopping/flight-offers", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		// Pricing currency is pinned server-side so conversion has a known
		// source unit.
		assert.Equal(t, "EUR", r.URL.Query().Get("currencyCode"))
		assert.Equal(t, "ALG", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "50", r.URL.Query().Get("max"))

		fmt.Fprint(w, `{"data":[{"id":"1","price":{"total":"200.00","currency":"EUR"},"itineraries":[{"segments":[{"departure":{"iataCode":"ALG","at":"2026-05-20T10:00:00"},"arrival":{"iataCode":"CDG","at":"2026-05-20T13:30:00"}}]}],"validatingAirlineCodes":["AH"]}]}`)
	}))
	defer server.Close()

	tokens := &stubTokenSource{}
	client := NewClient(server.URL, tokens, server.Client())

	offers, err := client.SearchOffers(context.Background(), SearchParams{
		Origin:        "ALG",
		Destination:   "CDG",
		DepartureDate: "2026-05-20",
		Adults:        1,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	assert.Equal(t, "1", offers[0].ID)
	assert.Equal(t, "200.00", offers[0].Price.Total)
	assert.Equal(t, "ALG", offers[0].Itineraries[0].Segments[0].Departure.IATACode)
	assert.NotEmpty(t, offers[0].Raw, "raw supplier payload must be preserved for pass-through")
}

func TestClient_ConfirmPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shopping/flight-offers/pricing", r.URL.Path)

		var body struct {
			Data struct {
				Type         string            `json:"type"`
				FlightOffers []json.RawMessage `json:"flightOffers"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "flight-offers-pricing", body.Data.Type)
		require.Len(t, body.Data.FlightOffers, 1)

		fmt.Fprint(w, `{"data":{"flightOffers":[{"id":"1","price":{"total":"210.00","currency":"EUR"}}]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenSource{}, server.Client())

	offer := offerFromJSON(t, `{"id":"1","price":{"total":"200.00","currency":"EUR"}}`)
	pricing, err := client.ConfirmPrice(context.Background(), offer)
	require.NoError(t, err)

	priced, ok := pricing.PricedOffer()
	require.True(t, ok)
	assert.Equal(t, "210.00", priced.Price.Total, "the repriced offer is authoritative")
}

func TestClient_ConfirmPrice_OfferExpired(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "supplier rejects repricing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"errors":[{"code":4926,"title":"INVALID DATA RECEIVED"}]}`)
			},
		},
		{
			name: "supplier returns no offers",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"flightOffers":[]}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, &stubTokenSource{}, server.Client())
			offer := offerFromJSON(t, `{"id":"1","price":{"total":"200.00","currency":"EUR"}}`)

			_, err := client.ConfirmPrice(context.Background(), offer)
			assert.ErrorIs(t, err, domain.ErrOfferExpired)
		})
	}
}

func TestClient_ConfirmPrice_SupplierError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"errors":[{"code":141,"title":"SYSTEM ERROR HAS OCCURRED"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenSource{}, server.Client())
	offer := offerFromJSON(t, `{"id":"1"}`)

	_, err := client.ConfirmPrice(context.Background(), offer)
	var supplierErr *domain.SupplierError
	require.ErrorAs(t, err, &supplierErr)
	assert.Equal(t, http.StatusInternalServerError, supplierErr.StatusCode)
	assert.Equal(t, "141", supplierErr.Code)
}

func TestClient_CheckAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shopping/availability/flight-availabilities", r.URL.Path)
		assert.Equal(t, "GET", r.Header.Get("X-HTTP-Method-Override"))
		fmt.Fprint(w, `{"meta":{"count":2},"data":[{},{}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenSource{}, server.Client())
	offer := offerFromJSON(t, `{"id":"1"}`)

	availability, err := client.CheckAvailability(context.Background(), offer)
	require.NoError(t, err)
	assert.Equal(t, 2, availability.Count)
	assert.NotEmpty(t, availability.Raw)
}

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/booking/flight-orders", r.URL.Path)

		var body struct {
			Data struct {
				Type         string            `json:"type"`
				FlightOffers []json.RawMessage `json:"flightOffers"`
				Travelers    []domain.Traveler `json:"travelers"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "flight-order", body.Data.Type)
		require.Len(t, body.Data.Travelers, 1)
		assert.Equal(t, "AMINA", body.Data.Travelers[0].Name.FirstName)

		fmt.Fprint(w, `{"data":{"id":"eJzTd9f3s","associatedRecords":[{"reference":"QVZ8RT"}]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenSource{}, server.Client())
	offer := offerFromJSON(t, `{"id":"1","price":{"total":"200.00","currency":"EUR"}}`)

	order, err := client.CreateOrder(context.Background(), offer, []domain.Traveler{testTraveler()})
	require.NoError(t, err)
	assert.Equal(t, "QVZ8RT", order.PNRReference)
	assert.Equal(t, "eJzTd9f3s", order.SupplierOrderID)
}

func TestClient_CreateOrder_MissingPNR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 2xx but no PNR: nothing can be considered booked.
		fmt.Fprint(w, `{"data":{"id":"eJzTd9f3s","associatedRecords":[]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenSource{}, server.Client())
	offer := offerFromJSON(t, `{"id":"1"}`)

	_, err := client.CreateOrder(context.Background(), offer, []domain.Traveler{testTraveler()})
	var orderErr *domain.OrderCreationError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, "eJzTd9f3s", orderErr.SupplierOrderID)
}

func TestClient_RetriesOnceAfter401(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	tokens := &stubTokenSource{}
	client := NewClient(server.URL, tokens, server.Client())

	_, err := client.SearchOffers(context.Background(), SearchParams{Origin: "ALG", Destination: "CDG", DepartureDate: "2026-05-20", Adults: 1})
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokens.invalidated))
	assert.Equal(t, int32(2), atomic.LoadInt32(&tokens.tokenCalls))
}

func TestClient_DoesNotRetryTwiceOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &stubTokenSource{}
	client := NewClient(server.URL, tokens, server.Client())

	_, err := client.SearchOffers(context.Background(), SearchParams{Origin: "ALG", Destination: "CDG", DepartureDate: "2026-05-20", Adults: 1})
	var supplierErr *domain.SupplierError
	require.ErrorAs(t, err, &supplierErr)
	assert.Equal(t, http.StatusUnauthorized, supplierErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokens.invalidated))
}

func offerFromJSON(t *testing.T, raw string) *domain.FlightOffer {
	t.Helper()
	var offer domain.FlightOffer
	require.NoError(t, json.Unmarshal([]byte(raw), &offer))
	return &offer
}

func testTraveler() domain.Traveler {
	return domain.Traveler{
		ID:          "1",
		Name:        domain.TravelerName{FirstName: "AMINA", LastName: "BENALI"},
		DateOfBirth: "1990-04-12",
		Gender:      "FEMALE",
		Contact: domain.Contact{
			Email:  "amina@example.com",
			Phones: []domain.Phone{{DeviceType: "MOBILE", CountryCallingCode: "213", Number: "550123456"}},
		},
	}
}
