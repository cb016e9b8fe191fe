package models

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateLink 推广链接表
type AffiliateLink struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                   // 主键
	ShortURL    string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"short_url"` // 短链编码
	Title       string         `gorm:"type:varchar(300);not null" json:"title"`                // 标题
	Description string         `gorm:"type:text" json:"description"`                           // 描述
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`                     // 商品图片
	YoutubeURL  string         `gorm:"type:varchar(500)" json:"youtube_url"`                   // 关联视频
	OriginalURL *string        `gorm:"type:varchar(1024)" json:"original_url"`                 // 兜底跳转地址（可空）
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                    // 是否启用
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`                 // 是否在首页展示
	ClickCount  int64          `gorm:"not null;default:0" json:"click_count"`                  // 累计点击数（冗余计数）
	CategoryID  *uint          `gorm:"index" json:"category_id"`                               // 分类ID
	BrandID     *uint          `gorm:"index" json:"brand_id"`                                  // 主品牌ID
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                      // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                             // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间

	// 关联
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`     // 分类信息
	Brand       *EcommerceBrand `gorm:"foreignKey:BrandID" json:"ecommerce_brand,omitempty"` // 主品牌信息
	ProductURLs []ProductURL    `gorm:"foreignKey:LinkID" json:"product_urls,omitempty"`     // 候选跳转地址列表
}

// TableName 指定表名
func (AffiliateLink) TableName() string {
	return "affiliate_links"
}

// ProductURL 推广链接的候选跳转地址
type ProductURL struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	LinkID    uint      `gorm:"not null;index" json:"link_id"`          // 所属推广链接ID
	BrandID   *uint     `gorm:"index" json:"brand_id"`                  // 电商品牌ID
	URL       string    `gorm:"type:varchar(1024);not null" json:"url"` // 跳转地址
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`        // 是否首选地址
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`      // 排序权重
	CreatedAt time.Time `json:"created_at"`                             // 创建时间

	Brand *EcommerceBrand `gorm:"foreignKey:BrandID" json:"ecommerce_brand,omitempty"` // 品牌信息
}

// TableName 指定表名
func (ProductURL) TableName() string {
	return "product_urls"
}
