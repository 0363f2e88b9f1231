// Package handler 提供 HTTP 请求处理器
// 本文件处理社团生命周期相关的 API 请求
package handler

import (
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ClubHandler 社团请求处理器
type ClubHandler struct {
	clubSvc service.ClubService
}

// NewClubHandler 创建社团处理器实例
func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

// CreateClub 创建社团
// POST /api/clubs
// 请求体: request.CreateClubRequest
// 响应: respond.ClubRespond
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req request.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.clubSvc.CreateClub(operatorId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// SearchClubs 搜索社团
// GET /api/clubs?name=xxx&status=ACTIVE&page=1&limit=10
// 响应: respond.SearchClubsRespond
func (h *ClubHandler) SearchClubs(c *gin.Context) {
	var req request.SearchClubsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.clubSvc.SearchClubs(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetClub 获取社团详情
// GET /api/clubs/:clubId
// 响应: respond.ClubDetailRespond
func (h *ClubHandler) GetClub(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.clubSvc.GetClub(clubId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateClub 更新社团信息
// PUT /api/clubs/:clubId
// 请求体: request.UpdateClubRequest
// 响应: respond.ClubRespond
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.clubSvc.UpdateClub(operatorId(c), clubId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateClubStatus 更新社团状态
// PATCH /api/clubs/:clubId/status
// 请求体: request.UpdateClubStatusRequest
// 响应: nil
func (h *ClubHandler) UpdateClubStatus(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateClubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.clubSvc.UpdateClubStatus(operatorId(c), clubId, req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteClub 删除社团
// DELETE /api/clubs/:clubId
// 响应: nil
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.clubSvc.DeleteClub(operatorId(c), clubId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
