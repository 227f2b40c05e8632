package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-task-api/internal/constants"
	apierrors "github.com/yukikurage/client-task-api/internal/errors"
	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/services"
)

var ErrMissingBearer = errors.New("missing or malformed bearer token")

// TokenVerifier resolves a token to the user ID it was issued for
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserResolver loads a live user record
type UserResolver interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth authenticates the request with a bearer token and loads the
// user it names. Every failure is rejected with 401 before the handler runs.
func RequireAuth(tokens TokenVerifier, users UserResolver, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			apierrors.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "Token has expired"
			}
			apierrors.Unauthorized(c, message)
			c.Abort()
			return
		}

		user, err := users.GetUser(context.WithoutCancel(c.Request.Context()), userID)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				log.Error("failed to resolve authenticated user",
					slog.String("user_id", userID),
					slog.String("error", err.Error()),
				)
			}
			apierrors.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		// Store the user in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// ExtractBearerToken returns the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ExtractBearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", ErrMissingBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
