package util

import (
	"errors"

	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ReadRequestBody(ctx *fiber.Ctx, result interface{}) error {
	err := ctx.BodyParser(&result)
	if err != nil {
		return err
	}
	return nil
}

func SendSuccessResponseWithData(ctx *fiber.Ctx, data interface{}) error {
	err := ctx.Status(fiber.StatusOK).JSON(data)
	if err != nil {
		return err
	}

	return nil
}

// SendUpstreamResponse relays a TrainerCentral answer verbatim: same status,
// same bytes.
func SendUpstreamResponse(ctx *fiber.Ctx, result *model.UpstreamResult) error {
	if result.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, result.ContentType)
	} else {
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	return ctx.Status(result.StatusCode).Send(result.Body)
}

func SendErrorResponse(ctx *fiber.Ctx, error error) error {
	err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": error,
	})
	if err != nil {
		return err
	}

	return nil
}

func SendErrorResponseUnauthorized(ctx *fiber.Ctx, error error) error {
	err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": error,
	})
	if err != nil {
		return err
	}

	return nil
}

func SendErrorResponseBadGateway(ctx *fiber.Ctx, error error) error {
	err := ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": error,
	})
	if err != nil {
		return err
	}

	return nil
}

func SendErrorResponseInternalServer(ctx *fiber.Ctx, log *zap.Logger, error error) error {
	log.Error("internal server error occured", zap.Error(error))
	err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    constant.ERR_INTERNAL_SERVER_ERROR_CODE,
			"message": constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE,
		},
	})

	if err != nil {
		return err
	}

	return err
}

// SendForwardingError maps the façade error kinds onto their HTTP statuses:
// failed token exchange -> 401, unreachable upstream -> 502, bad input -> 400,
// anything else -> 500.
func SendForwardingError(ctx *fiber.Ctx, log *zap.Logger, err error) error {
	var authenticationErr *model.AuthenticationError
	if errors.As(err, &authenticationErr) {
		return SendErrorResponseUnauthorized(ctx, err)
	}

	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) {
		return SendErrorResponseBadGateway(ctx, err)
	}

	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return SendErrorResponse(ctx, err)
	}

	return SendErrorResponseInternalServer(ctx, log, err)
}
