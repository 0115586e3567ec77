package factory

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}

// LoggerWithContext tags logger with the request id, whether the caller sent
// one or the request-id middleware generated it.
func LoggerWithContext(logger logrus.FieldLogger, ctx echo.Context) logrus.FieldLogger {
	return logger.WithField("request_id", RequestID(ctx))
}

func RequestID(ctx echo.Context) string {
	if requestID := ctx.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return ctx.Response().Header().Get(echo.HeaderXRequestID)
}
