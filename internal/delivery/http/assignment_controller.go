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

type AssignmentController struct {
	AssignmentUsecase *usecase.AssignmentUsecase
	Log               *zap.Logger
	Config            *koanf.Koanf
}

func NewAssignmentController(assignmentUsecase *usecase.AssignmentUsecase, zap *zap.Logger, koanf *koanf.Koanf) *AssignmentController {
	return &AssignmentController{
		AssignmentUsecase: assignmentUsecase,
		Log:               zap,
		Config:            koanf,
	}
}

func (controller AssignmentController) CreateAssignment(ctx *fiber.Ctx) error {
	var payload model.AssignmentCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.AssignmentUsecase.CreateAssignment(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller AssignmentController) DeleteAssignment(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	result, err := controller.AssignmentUsecase.DeleteAssignment(ctx.UserContext(), sessionId)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}
