package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/domain/user"
)

// RemoteVerifier asks the identity provider's user endpoint who owns a token.
type RemoteVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Sub   string `json:"sub"`
	User  struct {
		ID    string `json:"id"`
		Sub   string `json:"sub"`
		Email string `json:"email"`
	} `json:"user"`
}

func NewRemoteVerifier(cfg config.AuthConfig) *RemoteVerifier {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &RemoteVerifier{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (user.Identity, error) {
	if v.baseURL == "" || v.apiKey == "" {
		return user.Identity{}, fmt.Errorf("remote auth not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return user.Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return user.Identity{}, fmt.Errorf("identity provider request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_, _ = io.Copy(io.Discard, resp.Body)
		return user.Identity{}, ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return user.Identity{}, fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}

	var payload userResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return user.Identity{}, ErrInvalidToken
	}

	id := firstNonEmpty(payload.ID, payload.Sub, payload.User.ID, payload.User.Sub)
	if id == "" {
		return user.Identity{}, ErrInvalidToken
	}

	return user.Identity{
		ID:    id,
		Email: firstNonEmpty(payload.Email, payload.User.Email),
	}, nil
}
