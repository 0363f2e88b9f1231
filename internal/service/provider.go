// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"campus_club_server/internal/dao/mysql/repository"
	myredis "campus_club_server/internal/dao/redis"
	"campus_club_server/internal/infrastructure/mq"
	"campus_club_server/internal/service/activity"
	"campus_club_server/internal/service/club"
	"campus_club_server/internal/service/membership"
	"campus_club_server/internal/service/notify"
	"campus_club_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Club         ClubService         // 社团 Service
	Membership   MembershipService   // 成员 Service
	Activity     ActivityService     // 活动 Service
	User         UserService         // 用户 Service
	Notification NotificationService // 通知 Service
}

// NewServices 创建并注入所有 Service 实例
// repos: Repository 层聚合；cache: 异步缓存；publisher: 事件发布端
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *Services {
	return &Services{
		Club:         club.NewClubService(repos, cache, publisher),
		Membership:   membership.NewMembershipService(repos, cache, publisher),
		Activity:     activity.NewActivityService(repos, cache, publisher),
		User:         user.NewUserService(repos, cache),
		Notification: notify.NewNotificationService(repos),
	}
}
