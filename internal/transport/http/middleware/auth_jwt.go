package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	resp "github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/response"
)

const keyClaims = "claims"

// AuthJWT 解出 Bearer 令牌并把声明挂到请求上；角色判断交给 access 包
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.FailStatus(c, http.StatusForbidden, "authentication required: missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.FailStatus(c, http.StatusForbidden, "authentication required: invalid token")
			return
		}
		c.Set(keyClaims, claims)
		c.Next()
	}
}

// ClaimsFrom 读取 AuthJWT 挂上的声明；公开路由返回 nil
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(keyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
