package respond

// MembershipRespond 成员记录响应
type MembershipRespond struct {
	Id       uint   `json:"id"`
	UserId   string `json:"userId"`
	ClubId   uint   `json:"clubId"`
	Role     string `json:"role"`
	JoinedAt string `json:"joinedAt"`
}
