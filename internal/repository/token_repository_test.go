package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdian3456/tcbridge/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTokenRepositoryForTest(t *testing.T, handler http.HandlerFunc) *TokenRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	credentials := model.Credentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token",
		OrgID:        "org123",
		Domain:       "https://example.trainercentral.com",
		AccountsURL:  server.URL,
	}

	return NewTokenRepository(zap.NewNop(), server.Client(), credentials)
}

func TestExchangeRefreshTokenComputesExpiry(t *testing.T) {
	repository := newTokenRepositoryForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer","api_domain":"https://www.zohoapis.in"}`))
	})

	before := time.Now()
	token, err := repository.ExchangeRefreshToken(context.Background())
	require.NoError(t, err, "exchange should succeed")
	require.Equal(t, "tok-1", token.Value, "token value should come from access_token")

	wantExpiry := before.Add(3600 * time.Second)
	require.WithinDuration(t, wantExpiry, token.ExpiresAt, 5*time.Second, "expiry should be now plus expires_in seconds")
}

func TestExchangeRefreshTokenMalformedBody(t *testing.T) {
	repository := newTokenRepositoryForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := repository.ExchangeRefreshToken(context.Background())

	var authenticationErr *model.AuthenticationError
	require.ErrorAs(t, err, &authenticationErr, "a malformed token response should be an AuthenticationError")
}

func TestExchangeRefreshTokenMissingAccessToken(t *testing.T) {
	repository := newTokenRepositoryForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	})

	_, err := repository.ExchangeRefreshToken(context.Background())

	var authenticationErr *model.AuthenticationError
	require.ErrorAs(t, err, &authenticationErr, "a 200 without an access_token should be an AuthenticationError")
}
