package http

import (
	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/middleware"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/usecase"
	"github.com/ferdian3456/tcbridge/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type LessonController struct {
	LessonUsecase *usecase.LessonUsecase
	Log           *zap.Logger
	Config        *koanf.Koanf
}

func NewLessonController(lessonUsecase *usecase.LessonUsecase, zap *zap.Logger, koanf *koanf.Koanf) *LessonController {
	return &LessonController{
		LessonUsecase: lessonUsecase,
		Log:           zap,
		Config:        koanf,
	}
}

func (controller LessonController) CreateLesson(ctx *fiber.Ctx) error {
	var payload model.LessonCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.LessonUsecase.CreateLesson(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	middleware.GetLoggerFromContext(ctx).Info("lesson created", zap.Int("status", result.StatusCode))

	return util.SendUpstreamResponse(ctx, result)
}

func (controller LessonController) UpdateLesson(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	var payload model.LessonUpdateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.LessonUsecase.UpdateLesson(ctx.UserContext(), sessionId, payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller LessonController) DeleteLesson(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	result, err := controller.LessonUsecase.DeleteLesson(ctx.UserContext(), sessionId)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}
