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

// WorkshopController serves both the course-scoped live session routes and
// the global workshop routes; they share one usecase.
type WorkshopController struct {
	WorkshopUsecase *usecase.WorkshopUsecase
	Log             *zap.Logger
	Config          *koanf.Koanf
}

func NewWorkshopController(workshopUsecase *usecase.WorkshopUsecase, zap *zap.Logger, koanf *koanf.Koanf) *WorkshopController {
	return &WorkshopController{
		WorkshopUsecase: workshopUsecase,
		Log:             zap,
		Config:          koanf,
	}
}

func (controller WorkshopController) CreateCourseLiveSession(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")

	var payload model.CourseLiveCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.WorkshopUsecase.CreateCourseLiveSession(ctx.UserContext(), courseId, payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) ListCourseLiveSessions(ctx *fiber.Ctx) error {
	courseId := ctx.Params("courseId")

	result, err := controller.WorkshopUsecase.ListCourseLiveSessions(ctx.UserContext(), courseId, listQuery(ctx))
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) DeleteCourseLiveSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	result, err := controller.WorkshopUsecase.DeleteLiveSession(ctx.UserContext(), sessionId)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) InviteLearner(ctx *fiber.Ctx) error {
	var payload model.InviteLearnerRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	if payload.Email == "" {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "email is required to not be empty",
			Param:   "email",
		})
	}

	result, err := controller.WorkshopUsecase.InviteLearner(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) CreateGlobalWorkshop(ctx *fiber.Ctx) error {
	var payload model.GlobalWorkshopCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.WorkshopUsecase.CreateGlobalWorkshop(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) UpdateGlobalWorkshop(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	var updates map[string]any
	err := util.ReadRequestBody(ctx, &updates)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.WorkshopUsecase.UpdateWorkshop(ctx.UserContext(), sessionId, updates)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) ListGlobalWorkshops(ctx *fiber.Ctx) error {
	result, err := controller.WorkshopUsecase.ListGlobalWorkshops(ctx.UserContext(), listQuery(ctx))
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) CreateOccurrence(ctx *fiber.Ctx) error {
	var payload model.OccurrenceCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.WorkshopUsecase.CreateOccurrence(ctx.UserContext(), payload)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) UpdateOccurrence(ctx *fiber.Ctx) error {
	talkId := ctx.Params("talkId")

	var updates map[string]any
	err := util.ReadRequestBody(ctx, &updates)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	result, err := controller.WorkshopUsecase.UpdateOccurrence(ctx.UserContext(), talkId, updates)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

func (controller WorkshopController) InviteWorkshopUser(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	email := ctx.Query("email")
	role := ctx.QueryInt("role", 3)
	source := ctx.QueryInt("source", 1)

	result, err := controller.WorkshopUsecase.InviteWorkshopUser(ctx.UserContext(), sessionId, email, role, source)
	if err != nil {
		return util.SendForwardingError(ctx, controller.Log, err)
	}

	return util.SendUpstreamResponse(ctx, result)
}

// listQuery forwards the wrapper's shared listing parameters untouched.
func listQuery(ctx *fiber.Ctx) url.Values {
	query := url.Values{}
	if filterType := ctx.Query("filter_type"); filterType != "" {
		query.Set("filterType", filterType)
	}
	if limit := ctx.Query("limit"); limit != "" {
		query.Set("limit", limit)
	}
	if si := ctx.Query("si"); si != "" {
		query.Set("si", si)
	}
	return query
}
