package repository

import (
	"errors"

	"github.com/eneso-link/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository 主理人资料数据访问接口
type ProfileRepository interface {
	GetFirst() (*models.Profile, error)
	Save(profile *models.Profile) error
}

// GormProfileRepository GORM 实现
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建资料仓库
func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// GetFirst 获取资料（单行表，取第一行）
func (r *GormProfileRepository) GetFirst() (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Save 保存资料
func (r *GormProfileRepository) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
