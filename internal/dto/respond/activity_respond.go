package respond

// ActivityRespond 活动信息响应
type ActivityRespond struct {
	Id          uint    `json:"id"`
	ClubId      uint    `json:"clubId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Location    string  `json:"location,omitempty"`
	Status      string  `json:"status"`
}
