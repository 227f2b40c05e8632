package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/client-task-api/internal/errors"
	"github.com/yukikurage/client-task-api/internal/services"
)

// respondError maps service errors onto API error responses. Unknown errors
// are logged and reported as 500 without their message.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrPasswordRequired),
		errors.Is(err, services.ErrPasswordTooLong),
		errors.Is(err, services.ErrNoFieldsProvided),
		errors.Is(err, services.ErrClientNameRequired),
		errors.Is(err, services.ErrClientIDRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTaskIDRequired),
		errors.Is(err, services.ErrTextRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrTokenInvalid):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotCommentAuthor):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskOrderConflict):
		apierrors.Conflict(c, err.Error())
	default:
		log.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(c, "")
	}
}

// requestContext detaches store work from client cancellation while keeping
// request-scoped values such as trace spans.
func requestContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
