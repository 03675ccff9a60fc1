package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/recruitd/internal/auth"
	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/logger"
)

// RequireAuth returns a Gin middleware that guards routes behind a valid
// Bearer session token. On success the decoded identity is bound to the
// request context for handlers to read.
//
// Every rejection is the same 401 body. A missing header, a non-Bearer
// scheme, a bad signature, and an expired token are indistinguishable from
// the outside; the precise cause goes to the log only.
func RequireAuth(tokens *auth.TokenService, log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("auth_guard")
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			log.Debug("Request rejected: missing or non-Bearer authorization header")
			reject(c)
			return
		}

		identity, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Debug("Request rejected: token parse failed", logger.Fields(
				logger.FieldError, err.Error(),
				"path", c.Request.URL.Path,
			))
			reject(c)
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func reject(c *gin.Context) {
	appErr := apperrors.Unauthorized("")
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
