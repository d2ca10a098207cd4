package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/supporthub/api/internal/observability"
	"github.com/supporthub/api/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, production bool) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics, production))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = util.NewInternalError(nil)
			}
			if err != nil {
				apiErr := util.ToAPIError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), apiErr.StatusCode)
				}
				response := fiber.Map{
					"status":  "error",
					"message": apiErr.Message,
					"errors":  apiErr.Errors,
				}
				if !production && apiErr.Err != nil {
					response["stack"] = apiErr.Err.Error()
				}
				if apiErr.StatusCode >= 500 {
					logger.Error("request failed", zap.Error(apiErr))
				}
				c.Status(apiErr.StatusCode)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}
