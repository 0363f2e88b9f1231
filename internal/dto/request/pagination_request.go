package request

// PaginationRequest 通用分页查询参数，零值时使用默认 page=1 limit=10
type PaginationRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
