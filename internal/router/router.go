// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"campus_club_server/internal/handler"
	"campus_club_server/internal/infrastructure/middleware"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// /api 下分为公开路由和需要 JWT 认证的路由两组
func (rt *Router) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	// 公开路由：注册登录、社团与活动的只读查询
	public := api.Group("")
	rt.RegisterAuthRoutes(public)
	rt.RegisterPublicClubRoutes(public)
	rt.RegisterPublicActivityRoutes(public)

	// 认证路由：一切写操作和身份相关查询
	authed := api.Group("", middleware.JWTAuth())
	rt.RegisterClubRoutes(authed)
	rt.RegisterMembershipRoutes(authed)
	rt.RegisterActivityRoutes(authed)
	rt.RegisterNotificationRoutes(authed)
}
