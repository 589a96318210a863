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

// Assignment sessions in TrainerCentral.
const deliveryModeAssignment = 5

type AssignmentUsecase struct {
	TrainerCentralRepository *repository.TrainerCentralRepository
	TokenUsecase             *TokenUsecase
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewAssignmentUsecase(trainerCentralRepository *repository.TrainerCentralRepository, tokenUsecase *TokenUsecase, zap *zap.Logger, koanf *koanf.Koanf) *AssignmentUsecase {
	return &AssignmentUsecase{
		TrainerCentralRepository: trainerCentralRepository,
		TokenUsecase:             tokenUsecase,
		Log:                      zap,
		Config:                   koanf,
	}
}

// CreateAssignment creates the assignment session and attaches its
// instructions as content, same two-call shape as lesson creation.
func (usecase *AssignmentUsecase) CreateAssignment(ctx context.Context, payload model.AssignmentCreateRequest) (*model.UpstreamResult, error) {
	if payload.AssignmentData == nil {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "assignment_data is required to not be empty",
			Param:   "assignment_data",
		}
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	assignmentData := payload.AssignmentData
	if _, ok := assignmentData["deliveryMode"]; !ok {
		assignmentData["deliveryMode"] = deliveryModeAssignment
	}

	sessionBody, err := sonic.Marshal(map[string]any{"session": assignmentData})
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
		usecase.Log.Warn("create assignment response carried no session id")
		return nil, &model.UpstreamError{
			Code:    constant.ERR_UPSTREAM_ERROR_CODE,
			Message: "TrainerCentral created the assignment but returned no session id",
		}
	}

	filename := payload.InstructionFilename
	if filename == "" {
		filename = "Instructions"
	}
	viewType := payload.ViewType
	if viewType == 0 {
		viewType = 4
	}

	instructionBody, err := sonic.Marshal(map[string]any{
		"content": map[string]any{
			"fileName": filename,
			"body":     payload.InstructionHTML,
			"viewType": viewType,
		},
	})
	if err != nil {
		return nil, err
	}

	instructionResult, err := usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions/"+sessionId+"/contents.json", nil, instructionBody)
	if err != nil {
		return nil, err
	}

	combined, err := sonic.Marshal(map[string]sonic.NoCopyRawMessage{
		"assignment":   sessionResult.Body,
		"instructions": instructionResult.Body,
	})
	if err != nil {
		return nil, err
	}

	return &model.UpstreamResult{
		StatusCode:  instructionResult.StatusCode,
		ContentType: "application/json",
		Body:        combined,
	}, nil
}

func (usecase *AssignmentUsecase) DeleteAssignment(ctx context.Context, sessionId string) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodDelete, "sessions/"+sessionId+".json", nil, nil)
}
