package navotar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

type bearerKey struct{}

// WithBearer stashes the session's bearer token on the context so the
// client can forward it upstream
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// ContextToken forwards the per-request session token carried on the
// context; every upstream call runs as the authenticated user
type ContextToken struct{}

func (ContextToken) Token(ctx context.Context) (string, error) {
	token, ok := ctx.Value(bearerKey{}).(string)
	if !ok || token == "" {
		return "", errors.New("no bearer token on request context")
	}
	return token, nil
}

// credentialRefreshSkew is how long before expiry a cached service token
// is treated as stale
const credentialRefreshSkew = time.Minute

// ClientCredentials obtains service tokens from the identity provider's
// token endpoint via the client_credentials grant. Background jobs run
// under this identity instead of a user session. Tokens are cached and
// refetched shortly before they expire.
type ClientCredentials struct {
	tokenURL     string
	clientID     string
	clientSecret string
	scope        string
	http         *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewClientCredentials(tokenURL, clientID, clientSecret, scope string) *ClientCredentials {
	return &ClientCredentials{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		scope:        scope,
		http:         &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *ClientCredentials) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expires.Add(-credentialRefreshSkew)) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	if c.scope != "" {
		form.Set("scope", c.scope)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var grant struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return "", errors.New("token endpoint returned no access token")
	}

	c.token = grant.AccessToken
	c.expires = time.Now().Add(time.Duration(grant.ExpiresIn) * time.Second)
	return c.token, nil
}
