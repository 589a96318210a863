package usecase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type TestUsecase struct {
	TrainerCentralRepository *repository.TrainerCentralRepository
	TokenUsecase             *TokenUsecase
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewTestUsecase(trainerCentralRepository *repository.TrainerCentralRepository, tokenUsecase *TokenUsecase, zap *zap.Logger, koanf *koanf.Koanf) *TestUsecase {
	return &TestUsecase{
		TrainerCentralRepository: trainerCentralRepository,
		TokenUsecase:             tokenUsecase,
		Log:                      zap,
		Config:                   koanf,
	}
}

func (usecase *TestUsecase) CreateTestForm(ctx context.Context, payload model.TestFormCreateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.createForm(ctx, token, payload)
}

func (usecase *TestUsecase) AddQuestions(ctx context.Context, payload model.AddQuestionsRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.addQuestions(ctx, token, payload.SessionID, payload.FormIDValue, payload.Questions)
}

// CreateFullTest is the convenience composition: create the form, then add
// every question against the returned formIdValue.
func (usecase *TestUsecase) CreateFullTest(ctx context.Context, payload model.FullTestCreateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	formResult, err := usecase.createForm(ctx, token, model.TestFormCreateRequest{
		SessionID:       payload.SessionID,
		Name:            payload.Name,
		DescriptionHTML: payload.DescriptionHTML,
	})
	if err != nil {
		return nil, err
	}
	if formResult.StatusCode < 200 || formResult.StatusCode >= 300 {
		return formResult, nil
	}

	formId := formIdFrom(formResult.Body)
	if formId == "" {
		usecase.Log.Warn("create form response carried no formIdValue")
		return nil, &model.UpstreamError{
			Code:    constant.ERR_UPSTREAM_ERROR_CODE,
			Message: "TrainerCentral created the form but returned no formIdValue",
		}
	}

	questionsResult, err := usecase.addQuestions(ctx, token, payload.SessionID, formId, payload.Questions)
	if err != nil {
		return nil, err
	}

	combined, err := sonic.Marshal(map[string]sonic.NoCopyRawMessage{
		"form":      formResult.Body,
		"questions": questionsResult.Body,
	})
	if err != nil {
		return nil, err
	}

	return &model.UpstreamResult{
		StatusCode:  questionsResult.StatusCode,
		ContentType: "application/json",
		Body:        combined,
	}, nil
}

func (usecase *TestUsecase) GetCourseSessions(ctx context.Context, courseId string, query url.Values) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodGet, "course/"+courseId+"/sessions.json", query, nil)
}

func (usecase *TestUsecase) createForm(ctx context.Context, token string, payload model.TestFormCreateRequest) (*model.UpstreamResult, error) {
	body, err := sonic.Marshal(map[string]any{
		"form": map[string]any{
			"name":        payload.Name,
			"description": payload.DescriptionHTML,
		},
	})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions/"+payload.SessionID+"/forms.json", nil, body)
}

func (usecase *TestUsecase) addQuestions(ctx context.Context, token string, sessionId string, formId string, questions map[string]any) (*model.UpstreamResult, error) {
	body, err := sonic.Marshal(map[string]any{"questions": questions})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions/"+sessionId+"/forms/"+formId+"/questions.json", nil, body)
}
