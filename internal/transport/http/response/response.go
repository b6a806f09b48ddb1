package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
)

// ErrorBody 是统一的失败响应体
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Fail 是 ErrorReporter 的出口：每次失败只暴露一种错误，
// 文案取自 apperr，内部原因不外泄。
func Fail(c *gin.Context, err error) {
	st := apperr.Status(err)
	c.AbortWithStatusJSON(st, ErrorBody{Status: st, Message: apperr.Message(err)})
}

// FailStatus 供中间件等传输层自身的拒绝使用
func FailStatus(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Status: status, Message: msg})
}
