// Package handler 提供 HTTP 请求处理器
// 本文件处理社团成员与角色相关的 API 请求
package handler

import (
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler 成员请求处理器
type MembershipHandler struct {
	membershipSvc service.MembershipService
}

// NewMembershipHandler 创建成员处理器实例
func NewMembershipHandler(membershipSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc}
}

// JoinClub 加入社团
// POST /api/clubs/:clubId/members
// 响应: respond.MembershipRespond
func (h *MembershipHandler) JoinClub(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.membershipSvc.JoinClub(operatorId(c), clubId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// LeaveClub 退出社团
// DELETE /api/clubs/:clubId/members
// 响应: nil
func (h *MembershipHandler) LeaveClub(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.membershipSvc.LeaveClub(operatorId(c), clubId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetClubMembers 获取社团成员列表
// GET /api/clubs/:clubId/members?page=1&limit=10
// 响应: respond.ClubMembersRespond
func (h *MembershipHandler) GetClubMembers(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.membershipSvc.GetClubMembers(clubId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateMemberRole 更新成员角色
// PUT /api/clubs/:clubId/members/:userId/role
// 请求体: request.UpdateMemberRoleRequest
// 响应: respond.MembershipRespond
func (h *MembershipHandler) UpdateMemberRole(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.membershipSvc.UpdateMemberRole(operatorId(c), clubId, c.Param("userId"), req.Role)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RemoveMember 移除成员
// DELETE /api/clubs/:clubId/members/:userId
// 响应: nil
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.membershipSvc.RemoveMember(operatorId(c), clubId, c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetMemberRole 查询用户在社团中的角色
// GET /api/clubs/:clubId/members/:userId/role
// 响应: {"role": "..."}
func (h *MembershipHandler) GetMemberRole(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	role, err := h.membershipSvc.GetMemberRole(clubId, c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"role": role})
}

// GetUserClubs 获取用户已加入的社团
// GET /api/users/:userId/clubs
// 响应: []respond.UserClubRespond
func (h *MembershipHandler) GetUserClubs(c *gin.Context) {
	data, err := h.membershipSvc.GetUserClubs(c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyClubs 获取当前登录用户已加入的社团
// GET /api/my/clubs
// 响应: []respond.UserClubRespond
func (h *MembershipHandler) GetMyClubs(c *gin.Context) {
	data, err := h.membershipSvc.GetUserClubs(operatorId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
