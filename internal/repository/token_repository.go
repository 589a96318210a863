package repository

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"

	"go.uber.org/zap"
)

type TokenRepository struct {
	Log         *zap.Logger
	HTTPClient  *http.Client
	Credentials model.Credentials
}

func NewTokenRepository(zap *zap.Logger, httpClient *http.Client, credentials model.Credentials) *TokenRepository {
	return &TokenRepository{
		Log:         zap,
		HTTPClient:  httpClient,
		Credentials: credentials,
	}
}

// ExchangeRefreshToken trades the long-lived refresh token for a short-lived
// access token at the Zoho accounts endpoint. One synchronous call, no retry.
func (repository *TokenRepository) ExchangeRefreshToken(ctx context.Context) (model.AccessToken, error) {
	token := model.AccessToken{}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", repository.Credentials.RefreshToken)
	form.Set("client_id", repository.Credentials.ClientID)
	form.Set("client_secret", repository.Credentials.ClientSecret)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, repository.Credentials.TokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return token, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := repository.HTTPClient.Do(request)
	if err != nil {
		repository.Log.Warn("token exchange request failed", zap.Error(err))
		return token, &model.AuthenticationError{
			Code:    constant.ERR_AUTHENTICATION_ERROR_CODE,
			Message: constant.ERR_AUTHENTICATION_ERROR_MESSAGE,
		}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return token, &model.AuthenticationError{
			Code:    constant.ERR_AUTHENTICATION_ERROR_CODE,
			Message: constant.ERR_AUTHENTICATION_ERROR_MESSAGE,
		}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		repository.Log.Warn("token exchange returned non-success status", zap.Int("status", response.StatusCode))
		return token, &model.AuthenticationError{
			Code:    constant.ERR_AUTHENTICATION_ERROR_CODE,
			Message: constant.ERR_AUTHENTICATION_ERROR_MESSAGE,
		}
	}

	var payload model.TokenExchangeResponse
	err = sonic.Unmarshal(body, &payload)
	if err != nil {
		repository.Log.Warn("token exchange returned malformed body", zap.Error(err))
		return token, &model.AuthenticationError{
			Code:    constant.ERR_AUTHENTICATION_ERROR_CODE,
			Message: constant.ERR_AUTHENTICATION_ERROR_MESSAGE,
		}
	}

	// Zoho answers 200 with an error field for bad credentials.
	if payload.Error != "" || payload.AccessToken == "" {
		repository.Log.Warn("token exchange rejected", zap.String("upstream_error", payload.Error))
		return token, &model.AuthenticationError{
			Code:    constant.ERR_AUTHENTICATION_ERROR_CODE,
			Message: constant.ERR_AUTHENTICATION_ERROR_MESSAGE,
		}
	}

	token.Value = payload.AccessToken
	token.ExpiresAt = time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)

	return token, nil
}
