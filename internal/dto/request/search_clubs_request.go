package request

// SearchClubsRequest 搜索社团请求
// name 为子串匹配（不区分大小写），status 为精确匹配
type SearchClubsRequest struct {
	Name   string `form:"name"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
