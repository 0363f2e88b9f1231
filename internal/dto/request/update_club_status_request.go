package request

// UpdateClubStatusRequest 更新社团状态请求
type UpdateClubStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
