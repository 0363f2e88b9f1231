package redis

import "fmt"

// 缓存键统一在此定义，避免各 Service 手拼字符串不一致

// ClubDetailKey 社团详情缓存键
func ClubDetailKey(clubId uint) string {
	return fmt.Sprintf("club_detail_%d", clubId)
}

// ClubMembersPageKey 社团成员列表分页缓存键
func ClubMembersPageKey(clubId uint, page, limit int) string {
	return fmt.Sprintf("club_members_%d_p%d_l%d", clubId, page, limit)
}

// ClubMembersPattern 社团成员列表全部分页的匹配模式
func ClubMembersPattern(clubId uint) string {
	return fmt.Sprintf("club_members_%d_*", clubId)
}

// UserTokenKey 用户 Refresh Token ID 存储键
func UserTokenKey(uuid string) string {
	return "user_token:" + uuid
}
