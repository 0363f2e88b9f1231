// Package repository 提供数据访问层的具体实现
// 本文件实现 NotificationRepository 接口
package repository

import (
	"campus_club_server/internal/model"

	"gorm.io/gorm"
)

// notificationRepository NotificationRepository 接口的实现
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建 NotificationRepository 实例
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 写入一条通知记录
func (r *notificationRepository) Create(n *model.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return wrapDBError(err, "写入通知记录")
	}
	return nil
}

// ListPaged 分页查询通知记录，按时间倒序
func (r *notificationRepository) ListPaged(page, limit int) ([]model.Notification, int64, error) {
	var list []model.Notification
	var total int64

	if err := r.db.Model(&model.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询通知总数")
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询通知")
	}

	return list, total, nil
}
