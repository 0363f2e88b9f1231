package respond

// ActivityListRespond 活动分页列表响应
type ActivityListRespond struct {
	Items []ActivityRespond `json:"items"`
	Pagination
}
