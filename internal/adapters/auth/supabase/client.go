package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dog-sitters/internal/platform/httpclient"
	"dog-sitters/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth client not configured")
	ErrUnauthorized  = errors.New("auth unauthorized")
	ErrUpstream      = errors.New("auth upstream error")
)

// Config del proveedor de auth hospedado.
// BaseURL y APIKey vienen de config (auth_base_url, auth_api_key).
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c, err := httpclient.New(cfg.BaseURL, cfg.APIKey, httpclient.WithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http.Configured()
}

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		UserType string `json:"user_type"`
	} `json:"user_metadata"`
}

// GetUser resuelve el access token contra GET /auth/v1/user.
func (c *Client) GetUser(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out userResponse
	err := c.http.Get(ctx, "/auth/v1/user", token, &out)
	switch {
	case httpclient.HasStatus(err, http.StatusUnauthorized, http.StatusForbidden):
		return auth.Claims{}, ErrUnauthorized
	case err != nil:
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing id", ErrUpstream)
	}

	return auth.Claims{
		UserID:   out.ID,
		Email:    strings.TrimSpace(out.Email),
		UserType: auth.UserType(strings.ToLower(strings.TrimSpace(out.UserMetadata.UserType))),
	}, nil
}
