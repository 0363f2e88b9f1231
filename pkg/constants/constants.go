package constants

import "time"

const (
	CHANNEL_SIZE               = 100              // 事件通道大小
	REDIS_TIMEOUT              = 30 * time.Minute // 列表类缓存过期时间
	CLUB_INFO_CACHE_TTL        = 24 * time.Hour   // 社团详情缓存过期时间
	REFRESH_TOKEN_EXPIRY_HOURS = 168              // Refresh Token 有效期（小时），168小时 = 7天

	DEFAULT_PAGE  = 1  // 分页默认页码
	DEFAULT_LIMIT = 10 // 分页默认每页条数
)

// 事件主题定义
// 每个变更操作对应一个主题，消费端（通知服务）按主题订阅
const (
	TopicClubCreated       = "club-created"
	TopicClubUpdated       = "club-updated"
	TopicClubStatusUpdated = "club-status-updated"
	TopicClubDeleted       = "club-deleted"
	TopicMemberJoined      = "club-member-joined"
	TopicMemberLeft        = "club-member-left"
	TopicMemberRoleUpdated = "club-member-role-updated"
	TopicMemberRemoved     = "club-member-removed"
	TopicActivityCreated   = "activity-created"
)

// EventTopics 通知服务订阅的全部主题
var EventTopics = []string{
	TopicClubCreated,
	TopicClubUpdated,
	TopicClubStatusUpdated,
	TopicClubDeleted,
	TopicMemberJoined,
	TopicMemberLeft,
	TopicMemberRoleUpdated,
	TopicMemberRemoved,
	TopicActivityCreated,
}
