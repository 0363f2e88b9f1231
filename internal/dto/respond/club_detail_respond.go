package respond

// ClubDetailRespond 社团详情响应，附带成员与活动列表
type ClubDetailRespond struct {
	ClubRespond
	Memberships []MembershipRespond `json:"memberships"`
	Activities  []ActivityRespond   `json:"activities"`
}
