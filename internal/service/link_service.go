package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eneso-link/internal/cache"
	"github.com/eneso-link/internal/logger"
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/repository"
)

// 跳转目标缓存有效期，命中后跳过数据库查询
const redirectCacheTTL = 60 * time.Second

// LinkService 推广链接业务服务
type LinkService struct {
	repo repository.LinkRepository
}

// NewLinkService 创建推广链接服务
func NewLinkService(repo repository.LinkRepository) *LinkService {
	return &LinkService{repo: repo}
}

// ResolvedRedirect 短链解析结果
type ResolvedRedirect struct {
	LinkID    uint   `json:"link_id"`
	TargetURL string `json:"target_url"`
}

// ResolveRedirect 解析短链编码得到跳转目标。
// 目标优先级：首选候选地址、排序最靠前的候选地址、兜底原始地址；
// 链接不存在或已停用返回 ErrLinkNotFound，无任何可用目标返回 ErrNoRedirectURL。
func (s *LinkService) ResolveRedirect(ctx context.Context, code string) (*ResolvedRedirect, error) {
	cacheKey := fmt.Sprintf("redirect:%s", code)
	var cached ResolvedRedirect
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	link, err := s.repo.GetByShortCode(code)
	if err != nil {
		return nil, err
	}
	if link == nil || !link.IsActive {
		return nil, ErrLinkNotFound
	}

	target := pickTargetURL(link)
	if target == "" {
		return nil, ErrNoRedirectURL
	}

	resolved := &ResolvedRedirect{LinkID: link.ID, TargetURL: target}
	if err := cache.SetJSON(ctx, cacheKey, resolved, redirectCacheTTL); err != nil {
		logger.Warnw("redirect_cache_set_failed", "code", code, "error", err)
	}
	return resolved, nil
}

// pickTargetURL 按优先级挑选跳转目标，查询已按首选、排序权重排好序
func pickTargetURL(link *models.AffiliateLink) string {
	for _, productURL := range link.ProductURLs {
		if productURL.IsPrimary && productURL.URL != "" {
			return productURL.URL
		}
	}
	for _, productURL := range link.ProductURLs {
		if productURL.URL != "" {
			return productURL.URL
		}
	}
	if link.OriginalURL != nil && *link.OriginalURL != "" {
		return *link.OriginalURL
	}
	return ""
}

// GetPublicDetail 获取公开链接详情，短链编码未命中时回退主键。
// 详情接口不过滤停用链接，is_active 只约束跳转入口。
func (s *LinkService) GetPublicDetail(key string) (*models.AffiliateLink, error) {
	link, err := s.repo.GetByShortCodeOrID(key)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}
