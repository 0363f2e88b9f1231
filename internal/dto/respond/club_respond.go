package respond

// ClubRespond 社团信息响应
type ClubRespond struct {
	Id              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	MeetingLocation string `json:"meetingLocation"`
	Image           string `json:"image,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}
