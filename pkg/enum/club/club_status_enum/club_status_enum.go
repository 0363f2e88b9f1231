package club_status_enum

// 社团状态
const (
	ACTIVE   = "ACTIVE"   // 正常运营
	INACTIVE = "INACTIVE" // 停用
	PENDING  = "PENDING"  // 待审核
)

// Valid 校验状态是否在枚举范围内
func Valid(status string) bool {
	switch status {
	case ACTIVE, INACTIVE, PENDING:
		return true
	}
	return false
}
