package request

// UpdateMemberRoleRequest 更新成员角色请求
// 使用位置:
//   - internal/handler/membership_handler.go: UpdateMemberRole
//   - internal/service/membership/service.go: UpdateMemberRole
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
