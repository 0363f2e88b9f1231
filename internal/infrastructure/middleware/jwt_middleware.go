package middleware

import (
	"net/http"
	"strings"

	"campus_club_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// unauthorized 按统一响应格式返回 401 并终止请求
func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"message":    message,
		"statusCode": http.StatusUnauthorized,
		"data":       nil,
	})
}

// JWTAuth JWT 认证中间件
// 验证 Access Token 并将用户标识存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Token 格式错误，请使用 Bearer Token")
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			unauthorized(c, "Token 已过期或无效，请重新登录")
			return
		}

		// Refresh Token 不能用来访问业务接口
		if claims.Subject != "access_token" {
			unauthorized(c, "请使用 Access Token 访问此接口")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
