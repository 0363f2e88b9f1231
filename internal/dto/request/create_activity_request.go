package request

import "time"

// CreateActivityRequest 创建活动请求
// 时间使用 RFC3339 格式，endDate 可省略，给出时不得早于 startDate
type CreateActivityRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	Location    string     `json:"location"`
}
