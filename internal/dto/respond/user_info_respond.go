package respond

// UserInfoRespond 用户信息响应
type UserInfoRespond struct {
	Uuid      string `json:"uuid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
