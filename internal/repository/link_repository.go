package repository

import (
	"errors"
	"strconv"

	"github.com/eneso-link/internal/models"

	"gorm.io/gorm"
)

// LinkRepository 推广链接数据访问接口
type LinkRepository interface {
	GetByShortCode(code string) (*models.AffiliateLink, error)
	GetByShortCodeOrID(key string) (*models.AffiliateLink, error)
	IncrementClickCount(linkID uint) error
	Create(link *models.AffiliateLink) error
	Update(link *models.AffiliateLink) error
}

// GormLinkRepository GORM 实现
type GormLinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository 创建推广链接仓库
func NewLinkRepository(db *gorm.DB) *GormLinkRepository {
	return &GormLinkRepository{db: db}
}

// withProductURLs 附带候选地址（首选优先、次按排序权重）及品牌信息
func (r *GormLinkRepository) withProductURLs(query *gorm.DB) *gorm.DB {
	return query.
		Preload("ProductURLs", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, sort_order ASC")
		}).
		Preload("ProductURLs.Brand")
}

// GetByShortCode 根据短链编码获取推广链接（含候选地址）
func (r *GormLinkRepository) GetByShortCode(code string) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	err := r.withProductURLs(r.db).
		Where("short_url = ?", code).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// GetByShortCodeOrID 先按短链编码、再按主键获取推广链接（公开详情接口）
func (r *GormLinkRepository) GetByShortCodeOrID(key string) (*models.AffiliateLink, error) {
	link, err := r.getFullBy("short_url = ?", key)
	if err != nil {
		return nil, err
	}
	if link != nil {
		return link, nil
	}
	// 主键是整型列，非数字键不可能命中，直接按未找到处理，
	// 避免 postgres 下的类型转换报错
	id, parseErr := strconv.ParseUint(key, 10, 64)
	if parseErr != nil {
		return nil, nil
	}
	return r.getFullBy("id = ?", uint(id))
}

func (r *GormLinkRepository) getFullBy(condition string, value interface{}) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	err := r.withProductURLs(r.db).
		Preload("Category").
		Preload("Brand").
		Where(condition, value).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// IncrementClickCount 原子累加点击计数
func (r *GormLinkRepository) IncrementClickCount(linkID uint) error {
	return r.db.Model(&models.AffiliateLink{}).
		Where("id = ?", linkID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1)).Error
}

// Create 创建推广链接
func (r *GormLinkRepository) Create(link *models.AffiliateLink) error {
	return r.db.Create(link).Error
}

// Update 更新推广链接
func (r *GormLinkRepository) Update(link *models.AffiliateLink) error {
	return r.db.Save(link).Error
}
