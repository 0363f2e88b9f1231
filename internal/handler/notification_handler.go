// Package handler 提供 HTTP 请求处理器
// 本文件处理通知记录查询的 API 请求
package handler

import (
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 通知请求处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建通知处理器实例
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListNotifications 分页查询通知记录
// GET /api/notifications?page=1&limit=10
// 响应: respond.NotificationListRespond
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.notificationSvc.ListNotifications(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
