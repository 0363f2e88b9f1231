package request

// UpdateActivityStatusRequest 更新活动状态请求
type UpdateActivityStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
