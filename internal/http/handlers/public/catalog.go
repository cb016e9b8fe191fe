package public

import (
	"errors"
	"net/http"

	"github.com/eneso-link/internal/http/response"
	"github.com/eneso-link/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch categories", err)
		return
	}
	response.OK(c, categories)
}

// GetLink 公开链接详情
// GET /api/links/:id（短链编码或主键均可）
func (h *Handler) GetLink(c *gin.Context) {
	key := c.Param("id")
	link, err := h.LinkService.GetPublicDetail(key)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			response.Error(c, http.StatusNotFound, "Link not found")
			return
		}
		response.InternalError(c, "Failed to fetch link", err)
		return
	}
	response.OK(c, link)
}

// ListLists 清单列表
// GET /api/lists?categoryId=
func (h *Handler) ListLists(c *gin.Context) {
	lists, err := h.ListService.List(c.Query("categoryId"))
	if err != nil {
		response.InternalError(c, "Failed to fetch lists", err)
		return
	}
	response.OK(c, lists)
}

// GetList 清单详情
// GET /api/lists/:slug（slug 或短链编码均可）
func (h *Handler) GetList(c *gin.Context) {
	slug := c.Param("slug")
	list, err := h.ListService.GetBySlugOrCode(slug)
	if err != nil {
		if errors.Is(err, service.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found", "slug": slug})
			return
		}
		response.InternalError(c, "Failed to fetch list", err)
		return
	}
	response.OK(c, list)
}

// GetProfile 主理人资料
// GET /api/profile
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.ProfileService.Get()
	if err != nil {
		response.InternalError(c, "Failed to fetch profile", err)
		return
	}
	response.OK(c, profile)
}
