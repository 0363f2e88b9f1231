package respond

// SearchClubsRespond 社团搜索响应
// Pagination 内嵌后序列化为扁平结构 {items, currentPage, totalPages, totalItems, itemsPerPage}
type SearchClubsRespond struct {
	Items []ClubRespond `json:"items"`
	Pagination
}
