package repository

import (
	"errors"

	"github.com/eneso-link/internal/models"

	"gorm.io/gorm"
)

// ListListFilter 清单列表查询条件
type ListListFilter struct {
	CategoryID string
	// PreviewLinks 每个清单附带的成员链接预览数量上限
	PreviewLinks int
}

// ListRepository 精选清单数据访问接口
type ListRepository interface {
	// Resolve 仅取主键与计数，slug 优先、短链编码次之
	Resolve(key string) (*models.CuratedList, error)
	// GetBySlugOrShortCode 取完整清单（分类、清单地址、有序成员链接）
	GetBySlugOrShortCode(key string) (*models.CuratedList, error)
	List(filter ListListFilter) ([]models.CuratedList, error)
	IncrementClickCount(listID uint) error
	Create(list *models.CuratedList) error
}

// GormListRepository GORM 实现
type GormListRepository struct {
	db *gorm.DB
}

// NewListRepository 创建清单仓库
func NewListRepository(db *gorm.DB) *GormListRepository {
	return &GormListRepository{db: db}
}

// Resolve 轻量解析清单，slug 未命中时回退短链编码
func (r *GormListRepository) Resolve(key string) (*models.CuratedList, error) {
	list, err := r.resolveBy("slug = ?", key)
	if err != nil {
		return nil, err
	}
	if list != nil {
		return list, nil
	}
	return r.resolveBy("short_url = ?", key)
}

func (r *GormListRepository) resolveBy(condition string, value string) (*models.CuratedList, error) {
	var list models.CuratedList
	err := r.db.Select("id", "slug", "click_count").
		Where(condition, value).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// GetBySlugOrShortCode 获取完整清单，slug 未命中时回退短链编码
func (r *GormListRepository) GetBySlugOrShortCode(key string) (*models.CuratedList, error) {
	list, err := r.getFullBy("slug = ?", key)
	if err != nil {
		return nil, err
	}
	if list != nil {
		return list, nil
	}
	return r.getFullBy("short_url = ?", key)
}

func (r *GormListRepository) getFullBy(condition string, value string) (*models.CuratedList, error) {
	var list models.CuratedList
	err := r.db.
		Preload("Category").
		Preload("ListURLs", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, sort_order ASC")
		}).
		Preload("ListURLs.Brand").
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Links.Link").
		Preload("Links.Link.Brand").
		Preload("Links.Link.ProductURLs", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, sort_order ASC")
		}).
		Preload("Links.Link.ProductURLs.Brand").
		Where(condition, value).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// List 清单列表，按创建时间倒序，附带成员链接预览
func (r *GormListRepository) List(filter ListListFilter) ([]models.CuratedList, error) {
	var lists []models.CuratedList

	preview := filter.PreviewLinks
	if preview <= 0 {
		preview = 100
	}

	query := r.db.Model(&models.CuratedList{}).
		Preload("Category").
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Limit(preview)
		}).
		Preload("Links.Link", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "image_url")
		})
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if err := query.Order("created_at DESC").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// IncrementClickCount 原子累加点击计数
func (r *GormListRepository) IncrementClickCount(listID uint) error {
	return r.db.Model(&models.CuratedList{}).
		Where("id = ?", listID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1)).Error
}

// Create 创建清单
func (r *GormListRepository) Create(list *models.CuratedList) error {
	return r.db.Create(list).Error
}
