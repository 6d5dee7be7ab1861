// Package httpclient habla con el backend hospedado (REST estilo PostgREST
// y el endpoint de auth). Todas las llamadas llevan la apikey del proyecto.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBody = 1 << 20 // 1MB
)

var ErrNotConfigured = errors.New("httpclient: base url and api key required")

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type Option func(*Client)

// WithTimeout <= 0 deja DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTransport permite inyectar un RoundTripper (tests).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.http.Transport = rt
		}
	}
}

// New arma el cliente. baseURL vacía es válida: el cliente queda sin
// configurar y Get devuelve ErrNotConfigured.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		http:   &http.Client{Timeout: DefaultTimeout},
		apiKey: strings.TrimSpace(apiKey),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		u, err := url.ParseRequestURI(baseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, fmt.Errorf("httpclient: invalid base url %q", baseURL)
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// StatusError es una respuesta no-2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}

// HasStatus indica si err es un StatusError con alguno de los códigos.
func HasStatus(err error, codes ...int) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	for _, code := range codes {
		if se.StatusCode == code {
			return true
		}
	}
	return false
}

// Get pide path (relativo a la base) y decodifica el JSON en out.
// Con bearer vacío se usa la apikey como token (acceso anónimo).
func (c *Client) Get(ctx context.Context, path, bearer string, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	if bearer = strings.TrimSpace(bearer); bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: reading body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: decoding %s: %w", path, err)
	}
	return nil
}
