package usecase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newLessonUsecaseForTest points both the accounts host and the api host at
// one test server, routed by path.
func newLessonUsecaseForTest(t *testing.T, apiHandler http.HandlerFunc) *LessonUsecase {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer"}`))
	})
	mux.HandleFunc("/api/v4/org123/", apiHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	credentials := model.Credentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token",
		OrgID:        "org123",
		Domain:       server.URL,
		AccountsURL:  server.URL,
	}

	log := zap.NewNop()
	tokenRepository := repository.NewTokenRepository(log, server.Client(), credentials)
	tokenUsecase := NewTokenUsecase(tokenRepository, log)
	trainerCentralRepository := repository.NewTrainerCentralRepository(log, server.Client(), credentials)

	return NewLessonUsecase(trainerCentralRepository, tokenUsecase, log, nil)
}

func TestCreateLessonComposesSessionAndContent(t *testing.T) {
	var paths []string
	usecase := newLessonUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/v4/org123/sessions.json":
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var payload map[string]map[string]any
			require.NoError(t, sonic.Unmarshal(body, &payload), "session payload should be json")
			require.Equal(t, "Intro", payload["session"]["name"], "session data should be wrapped under session")
			require.EqualValues(t, 4, payload["session"]["deliveryMode"], "content delivery mode should be defaulted")

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"session":{"id":"s42","name":"Intro"}}`))
		case "/api/v4/org123/sessions/s42/contents.json":
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"content":{"fileName":"Content","body":"<p>hello</p>"}}`, string(body), "content payload should carry the html body")

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"content":{"id":"ct7"}}`))
		default:
			t.Fatalf("unexpected upstream path %s", r.URL.Path)
		}
	})

	result, err := usecase.CreateLesson(context.Background(), model.LessonCreateRequest{
		SessionData: map[string]any{"name": "Intro", "courseId": "c1"},
		ContentHTML: "<p>hello</p>",
	})
	require.NoError(t, err, "lesson creation should succeed")
	require.Equal(t, []string{"/api/v4/org123/sessions.json", "/api/v4/org123/sessions/s42/contents.json"}, paths, "session must be created before its content")
	require.Equal(t, http.StatusCreated, result.StatusCode, "combined result should carry the content call status")
	require.JSONEq(t, `{"lesson":{"session":{"id":"s42","name":"Intro"}},"content":{"content":{"id":"ct7"}}}`, string(result.Body), "both upstream answers should be combined")
}

func TestCreateLessonRelaysFailedSessionCreate(t *testing.T) {
	var calls int
	usecase := newLessonUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"name already taken"}`))
	})

	result, err := usecase.CreateLesson(context.Background(), model.LessonCreateRequest{
		SessionData: map[string]any{"name": "Intro"},
		ContentHTML: "<p>hello</p>",
	})
	require.NoError(t, err, "a rejected session create is relayed, not an error")
	require.Equal(t, 1, calls, "content upload must not run when the session create failed")
	require.Equal(t, http.StatusUnprocessableEntity, result.StatusCode, "upstream rejection should be relayed")
	require.JSONEq(t, `{"message":"name already taken"}`, string(result.Body))
}

func TestCreateLessonMissingSessionId(t *testing.T) {
	usecase := newLessonUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session":{"name":"Intro"}}`))
	})

	_, err := usecase.CreateLesson(context.Background(), model.LessonCreateRequest{
		SessionData: map[string]any{"name": "Intro"},
	})

	var upstreamErr *model.UpstreamError
	require.ErrorAs(t, err, &upstreamErr, "a create response without a session id cannot be continued")
}

func TestCreateLessonRequiresSessionData(t *testing.T) {
	usecase := newLessonUsecaseForTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	})

	_, err := usecase.CreateLesson(context.Background(), model.LessonCreateRequest{})

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr, "missing session_data should be a ValidationError")
	require.Equal(t, "session_data", validationErr.Param)
}
