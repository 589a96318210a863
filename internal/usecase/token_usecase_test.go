package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTokenUsecaseForTest(t *testing.T, handler http.HandlerFunc) (*TokenUsecase, *httptest.Server) {
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

	tokenRepository := repository.NewTokenRepository(zap.NewNop(), server.Client(), credentials)
	return NewTokenUsecase(tokenRepository, zap.NewNop()), server
}

func TestGetAccessTokenExchangesOnceAndCaches(t *testing.T) {
	var exchanges int64
	usecase, _ := newTokenUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&exchanges, 1)

		require.Equal(t, http.MethodPost, r.Method, "token exchange should be a POST")
		require.Equal(t, "/oauth/v2/token", r.URL.Path, "token exchange should hit the oauth token path")
		require.NoError(t, r.ParseForm(), "token exchange body should be form encoded")
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"), "grant_type should be refresh_token")
		require.Equal(t, "refresh-token", r.PostForm.Get("refresh_token"), "refresh token should be relayed")
		require.Equal(t, "client-id", r.PostForm.Get("client_id"), "client id should be relayed")
		require.Equal(t, "client-secret", r.PostForm.Get("client_secret"), "client secret should be relayed")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer"}`))
	})

	ctx := context.Background()

	first, err := usecase.GetAccessToken(ctx)
	require.NoError(t, err, "first token fetch should succeed")
	require.Equal(t, "tok-1", first, "token value should come from the exchange response")

	second, err := usecase.GetAccessToken(ctx)
	require.NoError(t, err, "second token fetch should succeed")
	require.Equal(t, first, second, "second fetch should reuse the cached token")

	require.Equal(t, int64(1), atomic.LoadInt64(&exchanges), "a valid cached token should not trigger another exchange")
}

func TestGetAccessTokenRefreshesWhenInsideLeeway(t *testing.T) {
	var exchanges int64
	usecase, _ := newTokenUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		// 30s lifetime is inside the one minute leeway, so never considered valid
		_, _ = w.Write([]byte(`{"access_token":"tok-short","expires_in":30,"token_type":"Bearer"}`))
	})

	ctx := context.Background()

	_, err := usecase.GetAccessToken(ctx)
	require.NoError(t, err, "first token fetch should succeed")

	_, err = usecase.GetAccessToken(ctx)
	require.NoError(t, err, "second token fetch should succeed")

	require.Equal(t, int64(2), atomic.LoadInt64(&exchanges), "a token expiring inside the leeway should be refreshed")
}

func TestGetAccessTokenRejectedCredentials(t *testing.T) {
	var exchanges int64
	usecase, _ := newTokenUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		// Zoho answers 200 with an error field for a bad refresh token
		_, _ = w.Write([]byte(`{"error":"invalid_code"}`))
	})

	ctx := context.Background()

	_, err := usecase.GetAccessToken(ctx)
	require.Error(t, err, "rejected credentials should surface an error")

	var authenticationErr *model.AuthenticationError
	require.ErrorAs(t, err, &authenticationErr, "rejected credentials should be an AuthenticationError")
	require.Equal(t, "AUTHENTICATION_ERROR", authenticationErr.Code, "error code should be AUTHENTICATION_ERROR")

	_, err = usecase.GetAccessToken(ctx)
	require.Error(t, err, "a failed exchange must not leave anything cached")
	require.Equal(t, int64(2), atomic.LoadInt64(&exchanges), "each call after a failure should retry the exchange")
}

func TestGetAccessTokenNonSuccessStatus(t *testing.T) {
	usecase, _ := newTokenUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	})

	_, err := usecase.GetAccessToken(context.Background())

	var authenticationErr *model.AuthenticationError
	require.ErrorAs(t, err, &authenticationErr, "a non-2xx token response should be an AuthenticationError")
}

func TestInvalidateForcesRefresh(t *testing.T) {
	var exchanges int64
	usecase, _ := newTokenUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer"}`))
	})

	ctx := context.Background()

	_, err := usecase.GetAccessToken(ctx)
	require.NoError(t, err, "first token fetch should succeed")

	usecase.Invalidate()

	_, err = usecase.GetAccessToken(ctx)
	require.NoError(t, err, "fetch after invalidate should succeed")
	require.Equal(t, int64(2), atomic.LoadInt64(&exchanges), "invalidate should force the next call to exchange again")
}

func TestTokenValidHonorsExpiry(t *testing.T) {
	usecase := &TokenUsecase{expiryLeeway: time.Minute}

	require.False(t, usecase.tokenValid(), "empty cache should not be valid")

	usecase.cached = model.AccessToken{Value: "tok", ExpiresAt: time.Now().Add(2 * time.Minute)}
	require.True(t, usecase.tokenValid(), "token well outside the leeway should be valid")

	usecase.cached = model.AccessToken{Value: "tok", ExpiresAt: time.Now().Add(30 * time.Second)}
	require.False(t, usecase.tokenValid(), "token inside the leeway should not be valid")
}
