package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dog-sitters/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier con el proveedor hospedado.
type Verifier struct {
	client *Client
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.GetUser(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("auth verify failed: %w", err)
	}

	switch claims.UserType {
	case auth.UserTypeClient, auth.UserTypeSitter:
	default:
		// Usuarios sin tipo todavía no terminaron el registro.
		claims.UserType = ""
	}
	return claims, nil
}
