package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dzair-travel/skyflow/internal/domain"
)

// TokenSource supplies valid bearer tokens and can drop a token the supplier
// has stopped accepting.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// Client is a typed wrapper around the supplier's search, pricing,
// availability and order endpoints. All prices are requested in EUR so the
// conversion downstream has a known source unit.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	TravelClass   string
	MaxResults    int
}

func (c *Client) SearchOffers(ctx context.Context, params SearchParams) ([]domain.FlightOffer, error) {
	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	if params.TravelClass != "" {
		q.Set("travelClass", params.TravelClass)
	}
	max := params.MaxResults
	if max <= 0 {
		max = 50
	}
	q.Set("max", strconv.Itoa(max))
	q.Set("currencyCode", "EUR")

	body, _, err := c.do(ctx, http.MethodGet, "/v2/shopping/flight-offers?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data []domain.FlightOffer `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.SupplierError{StatusCode: http.StatusOK, Message: fmt.Sprintf("malformed search response: %v", err)}
	}
	return resp.Data, nil
}

func (c *Client) ConfirmPrice(ctx context.Context, offer *domain.FlightOffer) (*domain.PricingResult, error) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-offers-pricing",
			"flightOffers": []*domain.FlightOffer{offer},
		},
	}

	body, status, err := c.do(ctx, http.MethodPost, "/v1/shopping/flight-offers/pricing", payload, nil)
	if err != nil {
		var se *domain.SupplierError
		// A 4xx here means the supplier refuses to reprice the offer: it is
		// stale, not broken.
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
			return nil, fmt.Errorf("%w (supplier status %d)", domain.ErrOfferExpired, se.StatusCode)
		}
		return nil, err
	}

	var resp struct {
		Data struct {
			FlightOffers []domain.FlightOffer `json:"flightOffers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.SupplierError{StatusCode: status, Message: fmt.Sprintf("malformed pricing response: %v", err)}
	}
	if len(resp.Data.FlightOffers) == 0 {
		return nil, domain.ErrOfferExpired
	}

	return &domain.PricingResult{FlightOffers: resp.Data.FlightOffers, Raw: body}, nil
}

func (c *Client) CheckAvailability(ctx context.Context, offer *domain.FlightOffer) (*domain.AvailabilityResult, error) {
	// The availability endpoint is a read modeled as a POST; the override
	// header keeps it side-effect free on the supplier side.
	headers := map[string]string{"X-HTTP-Method-Override": "GET"}

	body, status, err := c.do(ctx, http.MethodPost, "/v1/shopping/availability/flight-availabilities", offer, headers)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.SupplierError{StatusCode: status, Message: fmt.Sprintf("malformed availability response: %v", err)}
	}
	return &domain.AvailabilityResult{Raw: body, Count: resp.Meta.Count}, nil
}

func (c *Client) CreateOrder(ctx context.Context, offer *domain.FlightOffer, travelers []domain.Traveler) (*domain.FlightOrder, error) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-order",
			"flightOffers": []*domain.FlightOffer{offer},
			"travelers":    travelers,
		},
	}

	body, status, err := c.do(ctx, http.MethodPost, "/v1/booking/flight-orders", payload, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			ID                string `json:"id"`
			AssociatedRecords []struct {
				Reference string `json:"reference"`
			} `json:"associatedRecords"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.SupplierError{StatusCode: status, Message: fmt.Sprintf("malformed order response: %v", err)}
	}

	// A 2xx without a PNR is not a partial success: nothing is booked
	// without a reference, but the supplier may still hold an order.
	if len(resp.Data.AssociatedRecords) == 0 || resp.Data.AssociatedRecords[0].Reference == "" {
		return nil, &domain.OrderCreationError{
			SupplierOrderID: resp.Data.ID,
			Message:         "supplier response carries no PNR reference",
		}
	}

	return &domain.FlightOrder{
		PNRReference:    resp.Data.AssociatedRecords[0].Reference,
		SupplierOrderID: resp.Data.ID,
		Raw:             body,
	}, nil
}

// do performs an authenticated call. On a 401 it forces exactly one token
// refresh and retries once; everything else surfaces immediately.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, headers map[string]string) ([]byte, int, error) {
	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
	}

	body, status, err := c.doOnce(ctx, method, path, encoded, headers)
	if status == http.StatusUnauthorized {
		c.tokens.Invalidate()
		body, status, err = c.doOnce(ctx, method, path, encoded, headers)
	}
	return body, status, err
}

func (c *Client) doOnce(ctx context.Context, method, path string, encoded []byte, headers map[string]string) ([]byte, int, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	var reader io.Reader
	if encoded != nil {
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if encoded != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &domain.SupplierError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &domain.SupplierError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, supplierErrorFromBody(resp.StatusCode, body)
	}
	return body, resp.StatusCode, nil
}

func supplierErrorFromBody(status int, body []byte) *domain.SupplierError {
	var parsed struct {
		Errors []struct {
			Code   json.Number `json:"code"`
			Title  string      `json:"title"`
			Detail string      `json:"detail"`
		} `json:"errors"`
	}
	se := &domain.SupplierError{StatusCode: status, Message: http.StatusText(status)}
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		se.Code = parsed.Errors[0].Code.String()
		se.Message = parsed.Errors[0].Title
		if parsed.Errors[0].Detail != "" {
			se.Message = parsed.Errors[0].Detail
		}
	}
	return se
}
