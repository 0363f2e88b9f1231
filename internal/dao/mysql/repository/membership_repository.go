// Package repository 提供数据访问层的具体实现
// 本文件实现 MembershipRepository 接口，处理社团成员相关的数据库操作
package repository

import (
	"campus_club_server/internal/model"

	"gorm.io/gorm"
)

// membershipRepository MembershipRepository 接口的实现
type membershipRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewMembershipRepository 创建 MembershipRepository 实例
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// FindByUserAndClub 查找某用户在某社团的成员记录
// 用于检查用户是否已加入该社团
func (r *membershipRepository) FindByUserAndClub(userUuid string, clubId uint) (*model.Membership, error) {
	var member model.Membership
	if err := r.db.Where("user_uuid = ? AND club_id = ?", userUuid, clubId).First(&member).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询成员记录 user_uuid=%s club_id=%d", userUuid, clubId)
	}
	return &member, nil
}

// FindByUser 查找用户的全部成员记录（预加载社团信息）
func (r *membershipRepository) FindByUser(userUuid string) ([]model.Membership, error) {
	var members []model.Membership
	if err := r.db.Preload("Club").Where("user_uuid = ?", userUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户所在社团 user_uuid=%s", userUuid)
	}
	return members, nil
}

// FindByClubPaged 分页查找社团成员，按加入时间倒序
// 返回: 成员列表、总数、错误
func (r *membershipRepository) FindByClubPaged(clubId uint, page, limit int) ([]model.Membership, int64, error) {
	var members []model.Membership
	var total int64

	if err := r.db.Model(&model.Membership{}).Where("club_id = ?", clubId).Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询社团成员总数 club_id=%d", clubId)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	if err := r.db.Where("club_id = ?", clubId).
		Order("joined_at DESC").
		Offset(offset).Limit(limit).
		Find(&members).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询社团成员 club_id=%d", clubId)
	}

	return members, total, nil
}

// Create 创建成员记录
// (user_uuid, club_id) 唯一索引冲突会被翻译为 CodeConflict
func (r *membershipRepository) Create(member *model.Membership) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建成员记录")
	}
	return nil
}

// UpdateRole 更新某用户在某社团的角色
func (r *membershipRepository) UpdateRole(userUuid string, clubId uint, role string) error {
	if err := r.db.Model(&model.Membership{}).
		Where("user_uuid = ? AND club_id = ?", userUuid, clubId).
		Update("role", role).Error; err != nil {
		return wrapDBErrorf(err, "更新成员角色 user_uuid=%s club_id=%d", userUuid, clubId)
	}
	return nil
}

// Delete 删除某用户在某社团的成员记录
// Unscoped 硬删除，保证退出后可重新加入（唯一索引不含软删除标记）
func (r *membershipRepository) Delete(userUuid string, clubId uint) error {
	if err := r.db.Unscoped().
		Where("user_uuid = ? AND club_id = ?", userUuid, clubId).
		Delete(&model.Membership{}).Error; err != nil {
		return wrapDBErrorf(err, "删除成员记录 user_uuid=%s club_id=%d", userUuid, clubId)
	}
	return nil
}

// DeleteByClubId 删除社团的全部成员记录
// 用于社团删除时的级联清理
func (r *membershipRepository) DeleteByClubId(clubId uint) error {
	if err := r.db.Unscoped().Where("club_id = ?", clubId).Delete(&model.Membership{}).Error; err != nil {
		return wrapDBErrorf(err, "删除社团全部成员 club_id=%d", clubId)
	}
	return nil
}
