package http

import (
	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/usecase"
	"github.com/ferdian3456/tcbridge/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ChapterController struct {
	ChapterUsecase *usecase.ChapterUsecase
	Log            *zap.Logger
	Config         *koanf.Koanf
}

func NewChapterController(chapterUsecase *usecase.ChapterUsecase, zap *zap.Logger, koanf *koanf.Koanf) *ChapterController {
	return &ChapterController{
		ChapterUsecase: chapterUsecase,
		Log:            zap,
		Config:         koanf,
	}
}

func (controller ChapterController) CreateChapter(ctx *fiber.Ctx) error {
	var payload model.ChapterCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	if payload.CourseID == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "courseId is required to not be empty",
			Param:   "courseId",
		})
	}
	if payload.Name == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "name is required to not be empty",
			Param:   "name",
		})
	}

	result, err := controller.ChapterUsecase.CreateChapter(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller ChapterController) UpdateChapter(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")
	sectionId := ctx.Params("sectionId")

	var payload model.ChapterUpdateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.ChapterUsecase.UpdateChapter(ctx.UserContext(), courseId, sectionId, payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller ChapterController) DeleteChapter(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")
	sectionId := ctx.Params("sectionId")

	result, err := controller.ChapterUsecase.DeleteChapter(ctx.UserContext(), courseId, sectionId)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}
