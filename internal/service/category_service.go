package service

import (
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List 获取全部分类，按排序权重与名称升序
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}
