package respond

// ClubMembersRespond 社团成员分页列表响应
type ClubMembersRespond struct {
	Items []MembershipRespond `json:"items"`
	Pagination
}
