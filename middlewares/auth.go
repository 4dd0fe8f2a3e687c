package middlewares

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/configs"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/utils"
)

// Restricted rejects requests without a valid bearer token and stashes the
// token's subject id in the context for downstream gates.
func Restricted(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" {
			resp.Unauthorized(c, "token required")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(raw, cfg.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "token invalid")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// RestrictedParamID requires the token subject to equal the id path param.
// Guards self-scoped routes like /users/:user_id.
func RestrictedParamID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		paramID, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || uint(paramID) != utils.CurrentUserID(c) {
			resp.Unauthorized(c, "invalid credentials")
			c.Abort()
			return
		}
		c.Next()
	}
}
