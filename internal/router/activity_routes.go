// Package router 提供 HTTP 路由注册
// 本文件定义活动相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicActivityRoutes 注册活动只读路由（无需认证）
func (rt *Router) RegisterPublicActivityRoutes(rg *gin.RouterGroup) {
	activityGroup := rg.Group("/activities")
	{
		activityGroup.GET("/upcoming", rt.handlers.Activity.GetUpcomingActivities) // 即将开始的活动
		activityGroup.GET("/:activityId", rt.handlers.Activity.GetActivity)        // 活动详情
	}
}

// RegisterActivityRoutes 注册活动写操作路由（需要认证）
func (rt *Router) RegisterActivityRoutes(rg *gin.RouterGroup) {
	rg.POST("/clubs/:clubId/activities", rt.handlers.Activity.CreateActivity) // 创建活动

	activityGroup := rg.Group("/activities")
	{
		activityGroup.PUT("/:activityId", rt.handlers.Activity.UpdateActivity)                // 更新活动
		activityGroup.PATCH("/:activityId/status", rt.handlers.Activity.UpdateActivityStatus) // 更新活动状态
		activityGroup.DELETE("/:activityId", rt.handlers.Activity.DeleteActivity)             // 删除活动
	}
}
