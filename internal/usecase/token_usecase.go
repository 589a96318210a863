package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"go.uber.org/zap"
)

// TokenUsecase owns the one cached access token for the process. Callers get
// the cached value while it is outside the expiry leeway; otherwise exactly
// one exchange runs and everyone waiting reuses its result.
type TokenUsecase struct {
	TokenRepository *repository.TokenRepository
	Log             *zap.Logger

	mu           sync.Mutex
	cached       model.AccessToken
	expiryLeeway time.Duration
}

func NewTokenUsecase(tokenRepository *repository.TokenRepository, zap *zap.Logger) *TokenUsecase {
	return &TokenUsecase{
		TokenRepository: tokenRepository,
		Log:             zap,
		expiryLeeway:    time.Minute,
	}
}

func (usecase *TokenUsecase) GetAccessToken(ctx context.Context) (string, error) {
	usecase.mu.Lock()
	defer usecase.mu.Unlock()

	if usecase.tokenValid() {
		return usecase.cached.Value, nil
	}

	token, err := usecase.TokenRepository.ExchangeRefreshToken(ctx)
	if err != nil {
		return "", err
	}

	usecase.cached = token
	usecase.Log.Debug("obtained new access token", zap.Time("expires_at", token.ExpiresAt))

	return token.Value, nil
}

// Invalidate drops the cached token so the next caller refreshes.
func (usecase *TokenUsecase) Invalidate() {
	usecase.mu.Lock()
	defer usecase.mu.Unlock()
	usecase.cached = model.AccessToken{}
}

// caller must hold mu
func (usecase *TokenUsecase) tokenValid() bool {
	if usecase.cached.Value == "" {
		return false
	}
	return time.Until(usecase.cached.ExpiresAt) > usecase.expiryLeeway
}
