package activity_status_enum

// 活动状态
// 状态之间没有强制的迁移表，授权角色可以直接设置任意枚举值
const (
	PENDING   = "PENDING"   // 待审核
	ACTIVE    = "ACTIVE"    // 进行中/已批准
	INACTIVE  = "INACTIVE"  // 暂停
	COMPLETED = "COMPLETED" // 已结束
	CANCELLED = "CANCELLED" // 已取消
)

// Valid 校验状态是否在枚举范围内
func Valid(status string) bool {
	switch status {
	case PENDING, ACTIVE, INACTIVE, COMPLETED, CANCELLED:
		return true
	}
	return false
}
