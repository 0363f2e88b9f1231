// Package repository 提供数据访问层的具体实现
// 本文件实现 ClubRepository 接口，处理社团相关的数据库操作
package repository

import (
	"strings"

	"campus_club_server/internal/model"

	"gorm.io/gorm"
)

// clubRepository ClubRepository 接口的实现
type clubRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewClubRepository 创建 ClubRepository 实例
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

// FindById 根据 ID 查找社团
func (r *clubRepository) FindById(id uint) (*model.Club, error) {
	var club model.Club
	if err := r.db.First(&club, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询社团 id=%d", id)
	}
	return &club, nil
}

// FindByIdWithRelations 根据 ID 查找社团并预加载成员与活动
func (r *clubRepository) FindByIdWithRelations(id uint) (*model.Club, error) {
	var club model.Club
	if err := r.db.Preload("Memberships").Preload("Activities").First(&club, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询社团详情 id=%d", id)
	}
	return &club, nil
}

// Search 按名称子串和状态分页搜索社团
// name: 子串匹配，不区分大小写；status: 精确匹配；均可为空
// 返回: 社团列表、总数、错误
func (r *clubRepository) Search(name, status string, page, limit int) ([]model.Club, int64, error) {
	var clubs []model.Club
	var total int64

	query := r.db.Model(&model.Club{})
	if name != "" {
		// LOWER 比较保证在区分大小写的排序规则下也能忽略大小写
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 先查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询社团总数")
	}

	// 计算偏移量
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	// 再分页查询，按创建时间倒序
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&clubs).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询社团")
	}

	return clubs, total, nil
}

// Create 创建社团
func (r *clubRepository) Create(club *model.Club) error {
	if err := r.db.Create(club).Error; err != nil {
		return wrapDBError(err, "创建社团")
	}
	return nil
}

// Updates 按字段部分更新社团
// fields 为空时不做任何操作
func (r *clubRepository) Updates(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Club{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return wrapDBErrorf(err, "更新社团 id=%d", id)
	}
	return nil
}

// UpdateStatus 更新社团状态
func (r *clubRepository) UpdateStatus(id uint, status string) error {
	if err := r.db.Model(&model.Club{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新社团状态 id=%d", id)
	}
	return nil
}

// SoftDeleteById 软删除社团
func (r *clubRepository) SoftDeleteById(id uint) error {
	if err := r.db.Delete(&model.Club{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除社团 id=%d", id)
	}
	return nil
}
