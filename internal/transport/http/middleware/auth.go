package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/reqctx"
	"github.com/gin-gonic/gin"
)

const (
	errNoToken       = "No token provided"
	errInvalidToken  = "Invalid token"
	errServiceDown   = "Service unavailable"
	errInternalError = "Internal server error"

	// nginx's code for a client that disconnected before the response
	statusClientClosedRequest = 499
)

// Authenticator resolves a raw bearer token to the user it names.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}

// Auth requires an "Authorization: Bearer <token>" header. A missing header
// is 401; a token that fails verification or names an unknown user is 403.
// On success the user is attached to the request context (see reqctx.User).
func Auth(authenticator Authenticator, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth_middleware")

	return func(c *gin.Context) {
		rawToken, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errNoToken})
			return
		}

		ctx := c.Request.Context()
		user, err := authenticator.Authenticate(ctx, rawToken)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrNoToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errNoToken})
			return
		case errors.Is(err, domain.ErrTokenInvalid):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errInvalidToken})
			return
		case errors.Is(err, context.Canceled):
			c.AbortWithStatus(statusClientClosedRequest)
			return
		case errors.Is(err, domain.ErrStoreUnavailable):
			logger.ErrorContext(ctx, "authenticate", "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": errServiceDown})
			return
		default:
			logger.ErrorContext(ctx, "authenticate", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errInternalError})
			return
		}

		c.Request = c.Request.WithContext(reqctx.WithUser(ctx, user))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
