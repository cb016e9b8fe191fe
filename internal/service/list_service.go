package service

import (
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/repository"
)

// ListService 精选清单业务服务
type ListService struct {
	repo repository.ListRepository
}

// NewListService 创建清单服务
func NewListService(repo repository.ListRepository) *ListService {
	return &ListService{repo: repo}
}

// List 获取清单列表，可按分类过滤
func (s *ListService) List(categoryID string) ([]models.CuratedList, error) {
	return s.repo.List(repository.ListListFilter{CategoryID: categoryID})
}

// GetBySlugOrCode 获取完整清单详情，slug 未命中时回退短链编码
func (s *ListService) GetBySlugOrCode(key string) (*models.CuratedList, error) {
	list, err := s.repo.GetBySlugOrShortCode(key)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// Resolve 轻量解析清单主键，用于点击统计入口
func (s *ListService) Resolve(key string) (*models.CuratedList, error) {
	list, err := s.repo.Resolve(key)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}
