package authenticator

import (
	"context"
	"strings"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Email returns the normalised email claim, or "" when absent
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailVerified reports the email_verified claim. Providers that omit
// the claim are trusted.
func (c Claims) EmailVerified() bool {
	verified, ok := c["email_verified"].(bool)
	return !ok || verified
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
