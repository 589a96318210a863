package http

import (
	"net/url"

	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/usecase"
	"github.com/ferdian3456/tcbridge/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type TestController struct {
	TestUsecase *usecase.TestUsecase
	Log         *zap.Logger
	Config      *koanf.Koanf
}

func NewTestController(testUsecase *usecase.TestUsecase, zap *zap.Logger, koanf *koanf.Koanf) *TestController {
	return &TestController{
		TestUsecase: testUsecase,
		Log:         zap,
		Config:      koanf,
	}
}

func (controller TestController) CreateFullTest(ctx *fiber.Ctx) error {
	var payload model.FullTestCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	if payload.SessionID == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "session_id is required to not be empty",
			Param:   "session_id",
		})
	}

	result, err := controller.TestUsecase.CreateFullTest(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller TestController) CreateTestForm(ctx *fiber.Ctx) error {
	var payload model.TestFormCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	if payload.SessionID == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "session_id is required to not be empty",
			Param:   "session_id",
		})
	}

	result, err := controller.TestUsecase.CreateTestForm(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller TestController) AddQuestions(ctx *fiber.Ctx) error {
	var payload model.AddQuestionsRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	if payload.SessionID == "" || payload.FormIDValue == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "session_id and form_id_value are required to not be empty",
			Param:   "form_id_value",
		})
	}

	result, err := controller.TestUsecase.AddQuestions(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller TestController) GetCourseSessions(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")

	query := url.Values{}
	if limit := ctx.Query("limit"); limit != "" {
		query.Set("limit", limit)
	}
	if si := ctx.Query("si"); si != "" {
		query.Set("si", si)
	}

	result, err := controller.TestUsecase.GetCourseSessions(ctx.UserContext(), courseId, query)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}
