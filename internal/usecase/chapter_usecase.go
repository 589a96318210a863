package usecase

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ChapterUsecase struct {
	TrainerCentralRepository *repository.TrainerCentralRepository
	TokenUsecase             *TokenUsecase
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewChapterUsecase(trainerCentralRepository *repository.TrainerCentralRepository, tokenUsecase *TokenUsecase, zap *zap.Logger, koanf *koanf.Koanf) *ChapterUsecase {
	return &ChapterUsecase{
		TrainerCentralRepository: trainerCentralRepository,
		TokenUsecase:             tokenUsecase,
		Log:                      zap,
		Config:                   koanf,
	}
}

func (usecase *ChapterUsecase) CreateChapter(ctx context.Context, payload model.ChapterCreateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"section": payload})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sections.json", nil, body)
}

func (usecase *ChapterUsecase) UpdateChapter(ctx context.Context, courseId string, sectionId string, payload model.ChapterUpdateRequest) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"section": payload})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPut, "course/"+courseId+"/sections/"+sectionId+".json", nil, body)
}

func (usecase *ChapterUsecase) DeleteChapter(ctx context.Context, courseId string, sectionId string) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodDelete, "course/"+courseId+"/sections/"+sectionId+".json", nil, nil)
}
