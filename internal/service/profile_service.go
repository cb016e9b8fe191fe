package service

import (
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/repository"
)

// ProfileService 主理人资料服务
type ProfileService struct {
	repo repository.ProfileRepository
}

// NewProfileService 创建资料服务
func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get 获取主理人资料，表为空时返回默认文案
func (s *ProfileService) Get() (*models.Profile, error) {
	profile, err := s.repo.GetFirst()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return defaultProfile(), nil
	}
	return profile, nil
}

func defaultProfile() *models.Profile {
	return &models.Profile{
		Name: "Eneso",
		Bio:  "Descubre mis productos favoritos",
	}
}
