package models

import (
	"time"

	"gorm.io/gorm"
)

// CuratedList 精选清单表
type CuratedList struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	Slug        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"` // 唯一标识
	ShortURL    *string        `gorm:"type:varchar(64);uniqueIndex" json:"short_url"`      // 短链编码（可空）
	Title       string         `gorm:"type:varchar(300);not null" json:"title"`            // 标题
	Description string         `gorm:"type:text" json:"description"`                       // 描述
	CoverImage  string         `gorm:"type:varchar(500)" json:"cover_image"`               // 封面图
	YoutubeURL  string         `gorm:"type:varchar(500)" json:"youtube_url"`               // 关联视频
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`             // 是否在首页展示
	ClickCount  int64          `gorm:"not null;default:0" json:"click_count"`              // 累计点击数（冗余计数）
	CategoryID  *uint          `gorm:"index" json:"category_id"`                           // 分类ID
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	// 关联
	Category *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	ListURLs []ListURL  `gorm:"foreignKey:ListID" json:"list_urls,omitempty"`    // 清单级跳转地址列表
	Links    []ListLink `gorm:"foreignKey:ListID" json:"links,omitempty"`        // 清单成员链接
}

// TableName 指定表名
func (CuratedList) TableName() string {
	return "curated_lists"
}

// ListURL 清单级候选跳转地址（与 ProductURL 同构）
type ListURL struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	ListID    uint      `gorm:"not null;index" json:"list_id"`          // 所属清单ID
	BrandID   *uint     `gorm:"index" json:"brand_id"`                  // 电商品牌ID
	URL       string    `gorm:"type:varchar(1024);not null" json:"url"` // 跳转地址
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`        // 是否首选地址
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`      // 排序权重
	CreatedAt time.Time `json:"created_at"`                             // 创建时间

	Brand *EcommerceBrand `gorm:"foreignKey:BrandID" json:"ecommerce_brand,omitempty"` // 品牌信息
}

// TableName 指定表名
func (ListURL) TableName() string {
	return "list_urls"
}

// ListLink 清单与推广链接的有序关联
type ListLink struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	ListID    uint      `gorm:"not null;index" json:"list_id"`     // 清单ID
	LinkID    uint      `gorm:"not null;index" json:"link_id"`     // 推广链接ID
	SortOrder int       `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt time.Time `json:"created_at"`                        // 创建时间

	Link *AffiliateLink `gorm:"foreignKey:LinkID" json:"link,omitempty"` // 链接信息
}

// TableName 指定表名
func (ListLink) TableName() string {
	return "list_links"
}
