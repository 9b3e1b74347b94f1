package authenticator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims(t *testing.T) {
	claims := Claims{"email": "  Ops@Example.COM ", "email_verified": true}
	assert.Equal(t, "ops@example.com", claims.Email())
	assert.True(t, claims.EmailVerified())

	assert.False(t, Claims{"email_verified": false}.EmailVerified())
	assert.True(t, Claims{}.EmailVerified())
	assert.Equal(t, "", Claims{}.Email())
}

func TestOpenIDConfig_IssuerURL(t *testing.T) {
	assert.Equal(t, "https://tenant.eu.auth0.com/", OpenIDConfig{Domain: "tenant.eu.auth0.com"}.IssuerURL())
	assert.Equal(t, "https://accounts.google.com", OpenIDConfig{Domain: "https://accounts.google.com"}.IssuerURL())
}

func TestNewOpenIDProvider_Validation(t *testing.T) {
	_, err := NewOpenIDProvider(context.Background(), OpenIDConfig{})
	assert.Error(t, err)

	_, err = NewOpenIDProvider(context.Background(), OpenIDConfig{Domain: "example.com", ClientID: "id"})
	assert.Error(t, err)
}

func TestNewOpenIDProvider_Discovery(t *testing.T) {
	var issuer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":                 issuer,
			"authorization_endpoint": issuer + "/authorize",
			"token_endpoint":         issuer + "/oauth/token",
			"jwks_uri":               issuer + "/.well-known/jwks.json",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	}))
	defer server.Close()
	issuer = server.URL

	provider, err := NewOpenIDProvider(context.Background(), OpenIDConfig{
		Domain:       server.URL,
		ClientID:     "babycare",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/admin/callback",
	})
	require.NoError(t, err)

	authURL, err := url.Parse(provider.GetAuthURL("state-123"))
	require.NoError(t, err)

	assert.Equal(t, "/authorize", authURL.Path)
	q := authURL.Query()
	assert.Equal(t, "babycare", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
	assert.Equal(t, "http://localhost:8080/admin/callback", q.Get("redirect_uri"))

	_, err = provider.GetClaims(context.Background(), &Token{})
	assert.Error(t, err)
}
