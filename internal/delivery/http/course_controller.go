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

type CourseController struct {
	CourseUsecase *usecase.CourseUsecase
	Log           *zap.Logger
	Config        *koanf.Koanf
}

func NewCourseController(courseUsecase *usecase.CourseUsecase, zap *zap.Logger, koanf *koanf.Koanf) *CourseController {
	return &CourseController{
		CourseUsecase: courseUsecase,
		Log:           zap,
		Config:        koanf,
	}
}

func (controller CourseController) CreateCourse(ctx *fiber.Ctx) error {
	var payload model.CourseCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	if payload.CourseName == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "courseName is required to not be empty",
			Param:   "courseName",
		})
	}

	result, err := controller.CourseUsecase.CreateCourse(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller CourseController) GetCourse(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")

	result, err := controller.CourseUsecase.GetCourse(ctx.UserContext(), courseId)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller CourseController) ListCourses(ctx *fiber.Ctx) error {
	query := url.Values{}
	if limit := ctx.Query("limit"); limit != "" {
		query.Set("limit", limit)
	}
	if si := ctx.Query("si"); si != "" {
		query.Set("si", si)
	}

	result, err := controller.CourseUsecase.ListCourses(ctx.UserContext(), query)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller CourseController) UpdateCourse(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")

	var payload model.CourseUpdateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.CourseUsecase.UpdateCourse(ctx.UserContext(), courseId, payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller CourseController) DeleteCourse(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")

	result, err := controller.CourseUsecase.DeleteCourse(ctx.UserContext(), courseId)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}
