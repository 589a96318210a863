package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ferdian3456/tcbridge/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTrainerCentralRepositoryForTest(t *testing.T, handler http.HandlerFunc) *TrainerCentralRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	credentials := model.Credentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token",
		OrgID:        "org123",
		Domain:       server.URL,
		AccountsURL:  "https://accounts.zoho.in",
	}

	return NewTrainerCentralRepository(zap.NewNop(), server.Client(), credentials)
}

func TestForwardBuildsAuthenticatedRequest(t *testing.T) {
	repository := newTrainerCentralRepositoryForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method, "method should be relayed")
		require.Equal(t, "/api/v4/org123/courses.json", r.URL.Path, "path should be rooted at the org base url")
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"), "access token should be sent as a bearer header")
		require.Equal(t, "application/json", r.Header.Get("Content-Type"), "json content type should be set when a body is present")
		require.Equal(t, "10", r.URL.Query().Get("limit"), "query parameters should be relayed")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err, "request body should be readable")
		require.JSONEq(t, `{"course":{"courseName":"Go 101"}}`, string(body), "body should be relayed untouched")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"course":{"id":"c1"}}`))
	})

	query := url.Values{}
	query.Set("limit", "10")

	result, err := repository.Forward(context.Background(), "tok-1", http.MethodPost, "courses.json", query, []byte(`{"course":{"courseName":"Go 101"}}`))
	require.NoError(t, err, "forward should succeed")
	require.Equal(t, http.StatusCreated, result.StatusCode, "upstream status should be preserved")
	require.Equal(t, "application/json", result.ContentType, "upstream content type should be preserved")
	require.JSONEq(t, `{"course":{"id":"c1"}}`, string(result.Body), "upstream body should be preserved byte for byte")
}

func TestForwardRelaysNonSuccessStatus(t *testing.T) {
	repository := newTrainerCentralRepositoryForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"course not found"}`))
	})

	result, err := repository.Forward(context.Background(), "tok-1", http.MethodGet, "courses/missing.json", nil, nil)
	require.NoError(t, err, "a non-2xx upstream answer is not an error, it is relayed")
	require.Equal(t, http.StatusNotFound, result.StatusCode, "upstream 404 should be preserved")
	require.JSONEq(t, `{"message":"course not found"}`, string(result.Body), "upstream error body should be preserved")
}

func TestForwardUnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := server.Client()
	server.Close()

	credentials := model.Credentials{
		OrgID:  "org123",
		Domain: server.URL,
	}
	repository := NewTrainerCentralRepository(zap.NewNop(), client, credentials)

	result, err := repository.Forward(context.Background(), "tok-1", http.MethodGet, "courses.json", nil, nil)
	require.Nil(t, result, "a transport failure should not produce a result")

	var upstreamErr *model.UpstreamError
	require.ErrorAs(t, err, &upstreamErr, "a transport failure should be an UpstreamError")
	require.Equal(t, "UPSTREAM_ERROR", upstreamErr.Code, "error code should be UPSTREAM_ERROR")
}
