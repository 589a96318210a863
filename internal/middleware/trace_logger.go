package middleware

import (
	"github.com/ferdian3456/tcbridge/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TraceLoggerMiddleware attaches a request id and, when tracing is active,
// trace/span ids to the logger stored in the request context.
func TraceLoggerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := c.Get(fiber.HeaderXRequestID)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestId)

		traceLogger := observability.WithContext(c.UserContext(), logger.With(zap.String("request_id", requestId)))

		c.Locals("logger", traceLogger)

		return c.Next()
	}
}
