package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/gym-console/app/auth"
	"github.com/vibast-solutions/gym-console/app/client"
	"github.com/vibast-solutions/gym-console/app/factory"
	"github.com/vibast-solutions/gym-console/app/types"
)

type sessionParser interface {
	Parse(token string) (*auth.Session, error)
}

// RequireSession rejects requests without a usable bearer token and forwards
// the caller's token and request id to the gym API calls made downstream.
func RequireSession(verifier sessionParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := auth.BearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(ctx, err.Error())
			}
			session, err := verifier.Parse(token)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}

			reqCtx := auth.WithToken(ctx.Request().Context(), token)
			reqCtx = auth.WithSession(reqCtx, session)
			if requestID := factory.RequestID(ctx); requestID != "" {
				reqCtx = client.WithRequestID(reqCtx, requestID)
			}
			ctx.SetRequest(ctx.Request().WithContext(reqCtx))
			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, &types.ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Error:      http.StatusText(http.StatusUnauthorized),
		Message:    message,
	})
}
