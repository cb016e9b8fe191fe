package repository

import (
	"github.com/eneso-link/internal/models"

	"gorm.io/gorm"
)

// ClickRepository 点击事件数据访问接口（只写不改）
type ClickRepository interface {
	CreateClick(click *models.Click) error
	CreateListClick(click *models.ListClick) error
	CountByLink(linkID uint) (int64, error)
	CountByList(listID uint) (int64, error)
}

// GormClickRepository GORM 实现
type GormClickRepository struct {
	db *gorm.DB
}

// NewClickRepository 创建点击仓库
func NewClickRepository(db *gorm.DB) *GormClickRepository {
	return &GormClickRepository{db: db}
}

// CreateClick 写入短链点击记录
func (r *GormClickRepository) CreateClick(click *models.Click) error {
	return r.db.Create(click).Error
}

// CreateListClick 写入清单点击记录
func (r *GormClickRepository) CreateListClick(click *models.ListClick) error {
	return r.db.Create(click).Error
}

// CountByLink 统计某链接的点击事件数
func (r *GormClickRepository) CountByLink(linkID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Click{}).Where("link_id = ?", linkID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByList 统计某清单的点击事件数
func (r *GormClickRepository) CountByList(listID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.ListClick{}).Where("list_id = ?", listID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
