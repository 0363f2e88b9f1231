// Package repository 提供数据访问层的具体实现
// 本文件实现 ActivityRepository 接口，处理社团活动相关的数据库操作
package repository

import (
	"time"

	"campus_club_server/internal/model"
	"campus_club_server/pkg/enum/activity/activity_status_enum"

	"gorm.io/gorm"
)

// activityRepository ActivityRepository 接口的实现
type activityRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewActivityRepository 创建 ActivityRepository 实例
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// FindById 根据 ID 查找活动
func (r *activityRepository) FindById(id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询活动 id=%d", id)
	}
	return &activity, nil
}

// FindByClubPaged 分页查找社团活动，按开始时间升序
func (r *activityRepository) FindByClubPaged(clubId uint, page, limit int) ([]model.Activity, int64, error) {
	var activities []model.Activity
	var total int64

	if err := r.db.Model(&model.Activity{}).Where("club_id = ?", clubId).Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询社团活动总数 club_id=%d", clubId)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	if err := r.db.Where("club_id = ?", clubId).
		Order("start_date ASC").
		Offset(offset).Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询社团活动 club_id=%d", clubId)
	}

	return activities, total, nil
}

// FindUpcoming 分页查找即将开始的活动
// 条件：startDate >= now 且状态为 ACTIVE，按开始时间升序
func (r *activityRepository) FindUpcoming(now time.Time, page, limit int) ([]model.Activity, int64, error) {
	var activities []model.Activity
	var total int64

	query := r.db.Model(&model.Activity{}).
		Where("start_date >= ? AND status = ?", now, activity_status_enum.ACTIVE)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询即将开始的活动总数")
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	if err := query.Order("start_date ASC").Offset(offset).Limit(limit).Find(&activities).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询即将开始的活动")
	}

	return activities, total, nil
}

// Create 创建活动
func (r *activityRepository) Create(activity *model.Activity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return wrapDBError(err, "创建活动")
	}
	return nil
}

// Updates 按字段部分更新活动
func (r *activityRepository) Updates(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Activity{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return wrapDBErrorf(err, "更新活动 id=%d", id)
	}
	return nil
}

// UpdateStatus 更新活动状态
func (r *activityRepository) UpdateStatus(id uint, status string) error {
	if err := r.db.Model(&model.Activity{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新活动状态 id=%d", id)
	}
	return nil
}

// Delete 删除活动
func (r *activityRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Activity{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除活动 id=%d", id)
	}
	return nil
}

// DeleteByClubId 删除社团的全部活动
// 用于社团删除时的级联清理
func (r *activityRepository) DeleteByClubId(clubId uint) error {
	if err := r.db.Where("club_id = ?", clubId).Delete(&model.Activity{}).Error; err != nil {
		return wrapDBErrorf(err, "删除社团全部活动 club_id=%d", clubId)
	}
	return nil
}
