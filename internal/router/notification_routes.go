// Package router 提供 HTTP 路由注册
// 本文件定义通知记录查询路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes 注册通知路由（需要认证）
func (rt *Router) RegisterNotificationRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", rt.handlers.Notification.ListNotifications) // 通知记录列表
}
