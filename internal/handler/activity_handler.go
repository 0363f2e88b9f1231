// Package handler 提供 HTTP 请求处理器
// 本文件处理社团活动相关的 API 请求
package handler

import (
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler 活动请求处理器
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler 创建活动处理器实例
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// CreateActivity 创建活动
// POST /api/clubs/:clubId/activities
// 请求体: request.CreateActivityRequest
// 响应: respond.ActivityRespond
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	clubId, err := parseUintParam(c, "clubId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.activitySvc.CreateActivity(operatorId(c), clubId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// GetClubActivities 获取社团活动列表
// GET /api/clubs/:clubId/activities?page=1&limit=10
// 响应: respond.ActivityListRespond
func (h *ActivityHandler) GetClubActivities(c *gin.Context) {
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
	data, err := h.activitySvc.GetClubActivities(clubId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUpcomingActivities 获取即将开始的活动
// GET /api/activities/upcoming?page=1&limit=10
// 响应: respond.ActivityListRespond
func (h *ActivityHandler) GetUpcomingActivities(c *gin.Context) {
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.activitySvc.GetUpcomingActivities(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetActivity 获取单个活动
// GET /api/activities/:activityId
// 响应: respond.ActivityRespond
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activityId, err := parseUintParam(c, "activityId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.activitySvc.GetActivity(activityId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateActivity 更新活动
// PUT /api/activities/:activityId
// 请求体: request.UpdateActivityRequest
// 响应: respond.ActivityRespond
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	activityId, err := parseUintParam(c, "activityId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.activitySvc.UpdateActivity(operatorId(c), activityId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateActivityStatus 更新活动状态
// PATCH /api/activities/:activityId/status
// 请求体: request.UpdateActivityStatusRequest
// 响应: nil
func (h *ActivityHandler) UpdateActivityStatus(c *gin.Context) {
	activityId, err := parseUintParam(c, "activityId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateActivityStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.activitySvc.UpdateActivityStatus(operatorId(c), activityId, req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteActivity 删除活动
// DELETE /api/activities/:activityId
// 响应: nil
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	activityId, err := parseUintParam(c, "activityId")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.activitySvc.DeleteActivity(operatorId(c), activityId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
