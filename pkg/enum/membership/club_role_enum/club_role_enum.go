// Package club_role_enum 定义社团内角色及权限判定
// 角色是封闭枚举，权限判断统一走本包的谓词函数，业务代码不允许散落角色列表字面量
package club_role_enum

// 社团角色，按信任度升序
const (
	MEMBER         = "MEMBER"         // 普通成员
	TREASURER      = "TREASURER"      // 财务
	SECRETARY      = "SECRETARY"      // 秘书
	VICE_PRESIDENT = "VICE_PRESIDENT" // 副社长
	PRESIDENT      = "PRESIDENT"      // 社长
	ADMIN          = "ADMIN"          // 社团管理员，拥有该社团的全部管理权限
)

// Level 返回角色的权限等级，数值越大权限越高
// 未知角色返回 -1
func Level(role string) int {
	switch role {
	case MEMBER:
		return 0
	case TREASURER:
		return 1
	case SECRETARY:
		return 2
	case VICE_PRESIDENT:
		return 3
	case PRESIDENT:
		return 4
	case ADMIN:
		return 5
	}
	return -1
}

// Valid 校验角色是否在枚举范围内
func Valid(role string) bool {
	return Level(role) >= 0
}

// HasManagementRights 判断角色是否具有活动管理权限
// 即 {SECRETARY, VICE_PRESIDENT, PRESIDENT, ADMIN}
func HasManagementRights(role string) bool {
	return Level(role) >= Level(SECRETARY)
}

// CanAdministrate 判断角色是否具有成员与社团管理权限
// 仅 PRESIDENT 与 ADMIN 可以改角色、移除成员、删除社团
func CanAdministrate(role string) bool {
	return role == PRESIDENT || role == ADMIN
}

// IsLeadership 判断角色是否为不可自行退出的领导角色
// 持有该角色的成员必须先转让角色或走管理员移除路径
func IsLeadership(role string) bool {
	return role == PRESIDENT || role == ADMIN
}
