package usecase

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Content lessons in TrainerCentral sessions.
const deliveryModeContent = 4

type LessonUsecase struct {
	TrainerCentralRepository *repository.TrainerCentralRepository
	TokenUsecase             *TokenUsecase
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewLessonUsecase(trainerCentralRepository *repository.TrainerCentralRepository, tokenUsecase *TokenUsecase, zap *zap.Logger, koanf *koanf.Koanf) *LessonUsecase {
	return &LessonUsecase{
		TrainerCentralRepository: trainerCentralRepository,
		TokenUsecase:             tokenUsecase,
		Log:                      zap,
		Config:                   koanf,
	}
}

// CreateLesson creates the session, then uploads its HTML body as a content
// file against the new session id. Both upstream answers go back to the
// caller under "lesson" and "content".
func (usecase *LessonUsecase) CreateLesson(ctx context.Context, payload model.LessonCreateRequest) (*model.UpstreamResult, error) {
	if payload.SessionData == nil {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "session_data is required to not be empty",
			Param:   "session_data",
		}
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	sessionData := payload.SessionData
	if _, ok := sessionData["deliveryMode"]; !ok {
		sessionData["deliveryMode"] = deliveryModeContent
	}

	sessionBody, err := sonic.Marshal(map[string]any{"session": sessionData})
	if err != nil {
		return nil, err
	}

	sessionResult, err := usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions.json", nil, sessionBody)
	if err != nil {
		return nil, err
	}
	if sessionResult.StatusCode < 200 || sessionResult.StatusCode >= 300 {
		return sessionResult, nil
	}

	sessionId := sessionIdFrom(sessionResult.Body)
	if sessionId == "" {
		usecase.Log.Warn("create session response carried no session id")
		return nil, &model.UpstreamError{
			Code:    constant.ERR_UPSTREAM_ERROR_CODE,
			Message: "TrainerCentral created the session but returned no session id",
		}
	}

	filename := payload.ContentFilename
	if filename == "" {
		filename = "Content"
	}

	contentBody, err := sonic.Marshal(map[string]any{
		"content": map[string]any{
			"fileName": filename,
			"body":     payload.ContentHTML,
		},
	})
	if err != nil {
		return nil, err
	}

	contentResult, err := usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions/"+sessionId+"/contents.json", nil, contentBody)
	if err != nil {
		return nil, err
	}

	combined, err := sonic.Marshal(map[string]sonic.NoCopyRawMessage{
		"lesson":  sessionResult.Body,
		"content": contentResult.Body,
	})
	if err != nil {
		return nil, err
	}

	return &model.UpstreamResult{
		StatusCode:  contentResult.StatusCode,
		ContentType: "application/json",
		Body:        combined,
	}, nil
}

func (usecase *LessonUsecase) UpdateLesson(ctx context.Context, sessionId string, payload model.LessonUpdateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"session": payload.Updates})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPut, "sessions/"+sessionId+".json", nil, body)
}

func (usecase *LessonUsecase) DeleteLesson(ctx context.Context, sessionId string) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodDelete, "sessions/"+sessionId+".json", nil, nil)
}
