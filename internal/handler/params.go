package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campus_club_server/pkg/errorx"
)

// parseUintParam 解析路径中的数字 ID 参数
func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errorx.Newf(errorx.CodeValidation, "无效的路径参数 %s", name)
	}
	return uint(id), nil
}

// operatorId 从 JWT 中间件写入的上下文取当前用户标识
func operatorId(c *gin.Context) string {
	return c.GetString("user_id")
}
