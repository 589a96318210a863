package config

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type upstreamCounters struct {
	tokenCalls int64
	apiCalls   int64
}

// setupTestApp wires the full application against one test server playing
// both the accounts host and the TrainerCentral API host.
func setupTestApp(t *testing.T, tokenHandler http.HandlerFunc, apiHandler http.HandlerFunc) (*fiber.App, *upstreamCounters) {
	t.Helper()

	counters := &upstreamCounters{}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&counters.tokenCalls, 1)
		tokenHandler(w, r)
	})
	mux.HandleFunc("/api/v4/org123/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&counters.apiCalls, 1)
		apiHandler(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	app := NewFiber()
	Server(&ServerConfig{
		Router:     app,
		HTTPClient: server.Client(),
		Log:        zap.NewNop(),
		Config:     koanf.New("."),
		Credentials: model.Credentials{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RefreshToken: "refresh-token",
			OrgID:        "org123",
			Domain:       server.URL,
			AccountsURL:  server.URL,
		},
	})

	return app, counters
}

func grantToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer"}`))
}

func TestCreateCourseRelaysUpstreamAnswer(t *testing.T) {
	app, counters := setupTestApp(t, grantToken, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method, "create should forward as POST")
		require.Equal(t, "/api/v4/org123/courses.json", r.URL.Path, "create should target courses.json")
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"), "the exchanged token should authenticate the call")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]map[string]any
		require.NoError(t, sonic.Unmarshal(body, &payload))
		require.Equal(t, "Go 101", payload["course"]["courseName"], "course fields should be wrapped under course")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"course":{"id":"c1","courseName":"Go 101"}}`))
	})

	request := httptest.NewRequest(http.MethodPost, "/courses/", strings.NewReader(`{"courseName":"Go 101"}`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err, "request should complete")
	require.Equal(t, http.StatusCreated, response.StatusCode, "upstream status should be relayed")

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"course":{"id":"c1","courseName":"Go 101"}}`, string(body), "upstream body should be relayed verbatim")
	require.Equal(t, int64(1), atomic.LoadInt64(&counters.tokenCalls), "one exchange should cover the call")
}

func TestGetCourseRelaysNotFound(t *testing.T) {
	app, _ := setupTestApp(t, grantToken, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/org123/courses/missing.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"course not found"}`))
	})

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, response.StatusCode, "an upstream 404 should pass through unchanged")

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"message":"course not found"}`, string(body))
}

func TestFailedTokenExchangeStopsForwarding(t *testing.T) {
	app, counters := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"invalid_code"}`))
	}, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the API must not be called without a token")
	})

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, response.StatusCode, "a failed exchange should answer 401")

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var parsed struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, sonic.Unmarshal(body, &parsed))
	require.Equal(t, "AUTHENTICATION_ERROR", parsed.Error.Code, "error code should be AUTHENTICATION_ERROR")
	require.Equal(t, int64(0), atomic.LoadInt64(&counters.apiCalls), "no upstream call should happen")
}

func TestCreateCourseRejectsMalformedBody(t *testing.T) {
	app, counters := setupTestApp(t, grantToken, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the API must not be called for a malformed request")
	})

	request := httptest.NewRequest(http.MethodPost, "/courses/", strings.NewReader(`{not json`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, response.StatusCode, "a malformed body should answer 400")
	require.Equal(t, int64(0), atomic.LoadInt64(&counters.tokenCalls), "no exchange should happen for a rejected request")
}

func TestCreateCourseRequiresName(t *testing.T) {
	app, _ := setupTestApp(t, grantToken, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the API must not be called for an invalid request")
	})

	request := httptest.NewRequest(http.MethodPost, "/courses/", strings.NewReader(`{"courseName":""}`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var parsed struct {
		Error struct {
			Code  string `json:"code"`
			Param string `json:"param"`
		} `json:"error"`
	}
	require.NoError(t, sonic.Unmarshal(body, &parsed))
	require.Equal(t, "VALIDATION_ERROR", parsed.Error.Code)
	require.Equal(t, "courseName", parsed.Error.Param, "the offending field should be named")
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupTestApp(t, grantToken, func(w http.ResponseWriter, r *http.Request) {})

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode, "health should answer without touching upstream")
}
