package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dzair-travel/skyflow/internal/domain"
	"golang.org/x/sync/singleflight"
)

// safetyMargin is how long a returned token is guaranteed to stay valid.
// Tokens closer to expiry than this are refreshed before being handed out.
const safetyMargin = 60 * time.Second

type accessToken struct {
	value     string
	expiresAt time.Time
}

// TokenCache holds at most one supplier bearer token and refreshes it on
// expiry. Concurrent callers hitting an expired cache are coalesced onto a
// single authentication call; some suppliers rate-limit the token endpoint.
type TokenCache struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client

	mu    sync.RWMutex
	token *accessToken

	group singleflight.Group
	now   func() time.Time
}

func NewTokenCache(baseURL, apiKey, apiSecret string, httpClient *http.Client) *TokenCache {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenCache{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Token returns a bearer token valid for at least the safety margin. It
// authenticates at most once per expiry, no matter how many goroutines ask.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	if t := c.token; t != nil && c.fresh(t) {
		c.mu.RUnlock()
		return t.value, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("token", func() (interface{}, error) {
		// A waiter that queued behind the refresh may find a fresh token
		// already stored.
		c.mu.RLock()
		if t := c.token; t != nil && c.fresh(t) {
			c.mu.RUnlock()
			return t.value, nil
		}
		c.mu.RUnlock()

		t, err := c.authenticate(ctx)
		c.mu.Lock()
		c.token = t
		c.mu.Unlock()
		if err != nil {
			return "", err
		}
		return t.value, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the cached token so the next Token call authenticates
// again. The gateway uses it when the supplier answers 401 with a token that
// should still be valid.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

func (c *TokenCache) fresh(t *accessToken) bool {
	return c.now().Add(safetyMargin).Before(t.expiresAt)
}

func (c *TokenCache) authenticate(ctx context.Context) (*accessToken, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &domain.AuthenticationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.AuthenticationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.AuthenticationError{Err: fmt.Errorf("token endpoint returned %d", resp.StatusCode)}
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &domain.AuthenticationError{Err: fmt.Errorf("decode token response: %w", err)}
	}
	if body.AccessToken == "" {
		return nil, &domain.AuthenticationError{Err: fmt.Errorf("token endpoint returned empty access_token")}
	}

	return &accessToken{
		value:     body.AccessToken,
		expiresAt: c.now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}, nil
}
