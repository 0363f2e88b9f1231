// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/dto/respond"
	"campus_club_server/internal/infrastructure/mq"
)

// ClubService 社团生命周期业务接口
type ClubService interface {
	// CreateClub 创建社团，创建者同事务内成为 ADMIN 成员
	CreateClub(creatorId string, req request.CreateClubRequest) (*respond.ClubRespond, error)
	// UpdateClub 部分更新社团信息，操作者须持有该社团 PRESIDENT/ADMIN
	UpdateClub(operatorId string, clubId uint, req request.UpdateClubRequest) (*respond.ClubRespond, error)
	// UpdateClubStatus 更新社团状态，操作者须持有该社团 PRESIDENT/ADMIN
	UpdateClubStatus(operatorId string, clubId uint, status string) error
	// DeleteClub 删除社团并级联清理成员与活动，要求操作者持有该社团 ADMIN 角色
	DeleteClub(operatorId string, clubId uint) error
	// SearchClubs 按名称子串与状态分页搜索社团
	SearchClubs(req request.SearchClubsRequest) (*respond.SearchClubsRespond, error)
	// GetClub 获取社团详情（含成员与活动）
	GetClub(clubId uint) (*respond.ClubDetailRespond, error)
}

// MembershipService 成员与角色业务接口
type MembershipService interface {
	// JoinClub 加入社团，初始角色 MEMBER，重复加入返回冲突错误
	JoinClub(userId string, clubId uint) (*respond.MembershipRespond, error)
	// LeaveClub 退出社团，PRESIDENT/ADMIN 不允许直接退出
	LeaveClub(userId string, clubId uint) error
	// UpdateMemberRole 更新成员角色，操作者须持有 PRESIDENT/ADMIN
	UpdateMemberRole(operatorId string, clubId uint, userId, role string) (*respond.MembershipRespond, error)
	// RemoveMember 移除成员，操作者须持有 PRESIDENT/ADMIN
	RemoveMember(operatorId string, clubId uint, userId string) error
	// GetClubMembers 分页获取社团成员，按加入时间倒序
	GetClubMembers(clubId uint, req request.PaginationRequest) (*respond.ClubMembersRespond, error)
	// GetUserClubs 获取用户加入的全部社团
	GetUserClubs(userId string) ([]respond.UserClubRespond, error)
	// GetMemberRole 查询用户在社团中的角色
	GetMemberRole(clubId uint, userId string) (string, error)
}

// ActivityService 活动业务接口
// 所有写操作要求操作者在所属社团内持有活动管理角色（SECRETARY 及以上）
type ActivityService interface {
	// CreateActivity 创建活动，初始状态 PENDING
	CreateActivity(operatorId string, clubId uint, req request.CreateActivityRequest) (*respond.ActivityRespond, error)
	// UpdateActivity 部分更新活动
	UpdateActivity(operatorId string, activityId uint, req request.UpdateActivityRequest) (*respond.ActivityRespond, error)
	// UpdateActivityStatus 更新活动状态
	UpdateActivityStatus(operatorId string, activityId uint, status string) error
	// DeleteActivity 删除活动
	DeleteActivity(operatorId string, activityId uint) error
	// GetActivity 获取单个活动
	GetActivity(activityId uint) (*respond.ActivityRespond, error)
	// GetClubActivities 分页获取社团活动，按开始时间升序
	GetClubActivities(clubId uint, req request.PaginationRequest) (*respond.ActivityListRespond, error)
	// GetUpcomingActivities 分页获取即将开始的活动（未开始且状态 ACTIVE）
	GetUpcomingActivities(req request.PaginationRequest) (*respond.ActivityListRespond, error)
}

// UserService 用户业务接口
type UserService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录，签发双 Token
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// GetUserInfo 获取用户信息
	GetUserInfo(uuid string) (*respond.UserInfoRespond, error)
}

// NotificationService 通知业务接口
// HandleEvent 作为事件总线的消费回调
type NotificationService interface {
	// HandleEvent 消费一条事件并落库
	HandleEvent(ctx context.Context, event mq.Event)
	// ListNotifications 分页查询通知记录
	ListNotifications(req request.PaginationRequest) (*respond.NotificationListRespond, error)
}
