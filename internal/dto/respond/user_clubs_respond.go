package respond

// UserClubRespond 用户已加入社团响应，内嵌社团信息
// 调用方按 clubId 线性查找即可得到用户在某社团的角色
type UserClubRespond struct {
	MembershipRespond
	Club ClubRespond `json:"club"`
}
