package respond

// RegisterRespond 用户注册响应
type RegisterRespond struct {
	Uuid      string `json:"uuid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
