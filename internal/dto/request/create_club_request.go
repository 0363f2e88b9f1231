package request

// CreateClubRequest 创建社团请求
// 使用位置:
//   - internal/handler/club_handler.go: CreateClub
//   - internal/service/club/service.go: CreateClub
type CreateClubRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Category        string `json:"category" binding:"required"`
	MeetingLocation string `json:"meetingLocation"`
	Image           string `json:"image"`
}
