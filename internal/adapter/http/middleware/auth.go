package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/ports"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/pkg/apierrors"
)

const userContextKey = "authenticated_user"

// AuthMiddleware resolves the bearer token on each request into a user and
// attaches it to the gin context. Every failure branch answers with the same
// 401 payload; the cause is only visible in the logs.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthorized, lang),
			)
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			zap.L().Debug("malformed authorization header", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthorized, lang),
			)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			zap.L().Debug("authentication failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthorized, lang),
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func GetUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
