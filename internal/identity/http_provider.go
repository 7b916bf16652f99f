package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPProvider verifies tokens by presenting them to the hosted identity
// provider's user endpoint.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider for the given base URL.
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify performs GET {base}/user with the caller's bearer token. A
// provider-side rejection yields ErrInvalidToken; reachability problems
// surface as distinct errors so the caller can report them as internal
// faults rather than bad credentials.
func (p *HTTPProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: user.ID, Email: user.Email}, nil
}
