// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"errors"
	"time"

	"campus_club_server/internal/model"
	"campus_club_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - ErrDuplicatedKey  -> CodeConflict（依赖 gorm TranslateError 翻译唯一索引冲突）
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrap(err, errorx.CodeConflict, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
// 功能同 wrapDBError，但支持 fmt.Sprintf 风格的格式化
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrapf(err, errorx.CodeConflict, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.User, error)
	// FindByEmail 根据邮箱查找用户
	FindByEmail(email string) (*model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
}

// ClubRepository 社团数据访问接口
type ClubRepository interface {
	// FindById 根据 ID 查找社团
	FindById(id uint) (*model.Club, error)
	// FindByIdWithRelations 根据 ID 查找社团并预加载成员与活动
	FindByIdWithRelations(id uint) (*model.Club, error)
	// Search 按名称子串（不区分大小写）和状态分页搜索，按创建时间倒序
	Search(name, status string, page, limit int) ([]model.Club, int64, error)
	// Create 创建社团
	Create(club *model.Club) error
	// Updates 按字段部分更新社团
	Updates(id uint, fields map[string]interface{}) error
	// UpdateStatus 更新社团状态
	UpdateStatus(id uint, status string) error
	// SoftDeleteById 软删除社团
	SoftDeleteById(id uint) error
}

// MembershipRepository 成员关系数据访问接口
// 成员记录采用硬删除，避免软删除残留与 (user_uuid, club_id) 唯一索引
// 冲突导致退出后无法重新加入
type MembershipRepository interface {
	// FindByUserAndClub 查找某用户在某社团的成员记录
	FindByUserAndClub(userUuid string, clubId uint) (*model.Membership, error)
	// FindByUser 查找用户的全部成员记录（预加载社团信息）
	FindByUser(userUuid string) ([]model.Membership, error)
	// FindByClubPaged 分页查找社团成员，按加入时间倒序
	FindByClubPaged(clubId uint, page, limit int) ([]model.Membership, int64, error)
	// Create 创建成员记录
	Create(member *model.Membership) error
	// UpdateRole 更新某用户在某社团的角色
	UpdateRole(userUuid string, clubId uint, role string) error
	// Delete 删除某用户在某社团的成员记录
	Delete(userUuid string, clubId uint) error
	// DeleteByClubId 删除社团的全部成员记录，用于社团删除级联
	DeleteByClubId(clubId uint) error
}

// ActivityRepository 活动数据访问接口
type ActivityRepository interface {
	// FindById 根据 ID 查找活动
	FindById(id uint) (*model.Activity, error)
	// FindByClubPaged 分页查找社团活动，按开始时间升序
	FindByClubPaged(clubId uint, page, limit int) ([]model.Activity, int64, error)
	// FindUpcoming 分页查找即将开始的活动（startDate >= now 且状态 ACTIVE）
	FindUpcoming(now time.Time, page, limit int) ([]model.Activity, int64, error)
	// Create 创建活动
	Create(activity *model.Activity) error
	// Updates 按字段部分更新活动
	Updates(id uint, fields map[string]interface{}) error
	// UpdateStatus 更新活动状态
	UpdateStatus(id uint, status string) error
	// Delete 删除活动
	Delete(id uint) error
	// DeleteByClubId 删除社团的全部活动，用于社团删除级联
	DeleteByClubId(clubId uint) error
}

// NotificationRepository 通知记录数据访问接口
type NotificationRepository interface {
	// Create 写入一条通知记录
	Create(n *model.Notification) error
	// ListPaged 分页查询通知记录，按时间倒序
	ListPaged(page, limit int) ([]model.Notification, int64, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db           *gorm.DB               // GORM 数据库实例
	User         UserRepository         // 用户 Repository
	Club         ClubRepository         // 社团 Repository
	Membership   MembershipRepository   // 成员关系 Repository
	Activity     ActivityRepository     // 活动 Repository
	Notification NotificationRepository // 通知 Repository
}

// NewRepositories 创建所有 Repository 实例
// db: GORM 数据库实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Club:         NewClubRepository(db),
		Membership:   NewMembershipRepository(db),
		Activity:     NewActivityRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// db 为空时（如测试中注入内存实现）直接执行，不提供事务语义
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
