package usecase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type CourseUsecase struct {
	TrainerCentralRepository *repository.TrainerCentralRepository
	TokenUsecase             *TokenUsecase
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewCourseUsecase(trainerCentralRepository *repository.TrainerCentralRepository, tokenUsecase *TokenUsecase, zap *zap.Logger, koanf *koanf.Koanf) *CourseUsecase {
	return &CourseUsecase{
		TrainerCentralRepository: trainerCentralRepository,
		TokenUsecase:             tokenUsecase,
		Log:                      zap,
		Config:                   koanf,
	}
}

func (usecase *CourseUsecase) CreateCourse(ctx context.Context, payload model.CourseCreateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"course": payload})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "courses.json", nil, body)
}

func (usecase *CourseUsecase) GetCourse(ctx context.Context, courseId string) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodGet, "courses/"+courseId+".json", nil, nil)
}

func (usecase *CourseUsecase) ListCourses(ctx context.Context, query url.Values) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodGet, "courses.json", query, nil)
}

func (usecase *CourseUsecase) UpdateCourse(ctx context.Context, courseId string, payload model.CourseUpdateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"course": payload})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPut, "courses/"+courseId+".json", nil, body)
}

func (usecase *CourseUsecase) DeleteCourse(ctx context.Context, courseId string) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodDelete, "courses/"+courseId+".json", nil, nil)
}
