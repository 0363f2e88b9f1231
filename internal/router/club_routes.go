// Package router 提供 HTTP 路由注册
// 本文件定义社团生命周期与成员管理的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicClubRoutes 注册社团只读路由（无需认证）
func (rt *Router) RegisterPublicClubRoutes(rg *gin.RouterGroup) {
	clubGroup := rg.Group("/clubs")
	{
		clubGroup.GET("", rt.handlers.Club.SearchClubs)                           // 搜索社团
		clubGroup.GET("/:clubId", rt.handlers.Club.GetClub)                       // 社团详情
		clubGroup.GET("/:clubId/members", rt.handlers.Membership.GetClubMembers)  // 成员列表
		clubGroup.GET("/:clubId/members/:userId/role", rt.handlers.Membership.GetMemberRole) // 查询成员角色
		clubGroup.GET("/:clubId/activities", rt.handlers.Activity.GetClubActivities)         // 社团活动列表
	}
}

// RegisterClubRoutes 注册社团写操作路由（需要认证）
func (rt *Router) RegisterClubRoutes(rg *gin.RouterGroup) {
	clubGroup := rg.Group("/clubs")
	{
		clubGroup.POST("", rt.handlers.Club.CreateClub)                       // 创建社团
		clubGroup.PUT("/:clubId", rt.handlers.Club.UpdateClub)                // 更新社团信息
		clubGroup.PATCH("/:clubId/status", rt.handlers.Club.UpdateClubStatus) // 更新社团状态
		clubGroup.DELETE("/:clubId", rt.handlers.Club.DeleteClub)             // 删除社团
	}
}

// RegisterMembershipRoutes 注册成员管理路由（需要认证）
func (rt *Router) RegisterMembershipRoutes(rg *gin.RouterGroup) {
	clubGroup := rg.Group("/clubs")
	{
		clubGroup.POST("/:clubId/members", rt.handlers.Membership.JoinClub)     // 加入社团
		clubGroup.DELETE("/:clubId/members", rt.handlers.Membership.LeaveClub)  // 退出社团
		clubGroup.PUT("/:clubId/members/:userId/role", rt.handlers.Membership.UpdateMemberRole) // 更新成员角色
		clubGroup.DELETE("/:clubId/members/:userId", rt.handlers.Membership.RemoveMember)       // 移除成员
	}

	rg.GET("/users/:userId/clubs", rt.handlers.Membership.GetUserClubs) // 用户加入的社团
	rg.GET("/my/clubs", rt.handlers.Membership.GetMyClubs)              // 我加入的社团
}
