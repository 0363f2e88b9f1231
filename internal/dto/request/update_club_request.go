package request

// UpdateClubRequest 更新社团请求，指针字段表示部分更新，nil 字段不变
type UpdateClubRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	MeetingLocation *string `json:"meetingLocation"`
	Image           *string `json:"image"`
}
