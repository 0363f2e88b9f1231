package respond

// NotificationRespond 通知记录响应
type NotificationRespond struct {
	Id        uint   `json:"id"`
	Topic     string `json:"topic"`
	Payload   string `json:"payload"`
	CreatedAt string `json:"createdAt"`
}

// NotificationListRespond 通知分页列表响应
type NotificationListRespond struct {
	Items []NotificationRespond `json:"items"`
	Pagination
}
