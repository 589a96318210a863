package repository

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"

	"go.uber.org/zap"
)

type TrainerCentralRepository struct {
	Log         *zap.Logger
	HTTPClient  *http.Client
	Credentials model.Credentials
}

func NewTrainerCentralRepository(zap *zap.Logger, httpClient *http.Client, credentials model.Credentials) *TrainerCentralRepository {
	return &TrainerCentralRepository{
		Log:         zap,
		HTTPClient:  httpClient,
		Credentials: credentials,
	}
}

// Forward issues one authenticated call against the TrainerCentral API and
// hands the answer back untouched, whatever its status. resourcePath is
// relative to {domain}/api/v4/{orgId}, e.g. "courses.json".
func (repository *TrainerCentralRepository) Forward(ctx context.Context, accessToken string, method string, resourcePath string, query url.Values, body []byte) (*model.UpstreamResult, error) {
	requestURL := repository.Credentials.BaseURL() + "/" + resourcePath
	if len(query) > 0 {
		requestURL = requestURL + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	repository.Log.Debug("forwarding request to trainercentral",
		zap.String("method", method),
		zap.String("path", resourcePath),
	)

	response, err := repository.HTTPClient.Do(request)
	if err != nil {
		repository.Log.Warn("upstream call failed", zap.String("path", resourcePath), zap.Error(err))
		return nil, &model.UpstreamError{
			Code:    constant.ERR_UPSTREAM_ERROR_CODE,
			Message: constant.ERR_UPSTREAM_ERROR_MESSAGE,
		}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &model.UpstreamError{
			Code:    constant.ERR_UPSTREAM_ERROR_CODE,
			Message: constant.ERR_UPSTREAM_ERROR_MESSAGE,
		}
	}

	return &model.UpstreamResult{
		StatusCode:  response.StatusCode,
		ContentType: response.Header.Get("Content-Type"),
		Body:        responseBody,
	}, nil
}
