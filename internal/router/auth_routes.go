// Package router 提供 HTTP 路由注册
// 本文件定义用户注册登录相关的路由
package router

import (
	"github.com/gin-gonic/gin"

	"campus_club_server/internal/infrastructure/middleware"
)

// RegisterAuthRoutes 注册认证相关路由
func (rt *Router) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", rt.handlers.User.Register) // 用户注册
		authGroup.POST("/login", rt.handlers.User.Login)       // 密码登录

		// 当前用户信息需要携带 Token
		authGroup.GET("/me", middleware.JWTAuth(), rt.handlers.User.GetMe)
	}
}
