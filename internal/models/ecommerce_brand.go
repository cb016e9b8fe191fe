package models

import "time"

// EcommerceBrand 电商平台品牌表（Trendyol / Amazon 等跳转目标站点）
type EcommerceBrand struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"` // 品牌名称
	Logo      string    `gorm:"type:varchar(500)" json:"logo"`                      // 品牌 Logo
	Color     string    `gorm:"type:varchar(20)" json:"color"`                      // 品牌主色
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	CreatedAt time.Time `json:"created_at"`                                         // 创建时间
}

// TableName 指定表名
func (EcommerceBrand) TableName() string {
	return "ecommerce_brands"
}
