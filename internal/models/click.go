package models

import "time"

// Click 短链点击记录（只增不改）
type Click struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                       // 主键
	LinkID    uint      `gorm:"not null;index" json:"link_id"`                              // 推广链接ID
	IPAddress string    `gorm:"type:varchar(64)" json:"ip_address"`                         // 客户端IP
	UserAgent string    `gorm:"type:varchar(1024)" json:"user_agent"`                       // 客户端UA
	Referrer  *string   `gorm:"type:varchar(1024)" json:"referrer"`                         // 来源地址（可空）
	Country   *string   `gorm:"type:varchar(100)" json:"country"`                           // 归属国家（可空）
	City      *string   `gorm:"type:varchar(100)" json:"city"`                              // 归属城市（可空）
	Device    *string   `gorm:"type:varchar(20)" json:"device"`                             // 设备类型（可空）
	Browser   *string   `gorm:"type:varchar(50)" json:"browser"`                            // 浏览器（可空）
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // 创建时间

	Link *AffiliateLink `gorm:"foreignKey:LinkID" json:"link,omitempty"` // 推广链接
}

// TableName 指定表名
func (Click) TableName() string {
	return "clicks"
}

// ListClick 清单点击记录（只增不改）
type ListClick struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                       // 主键
	ListID    uint      `gorm:"not null;index" json:"list_id"`                              // 清单ID
	ListURLID *string   `gorm:"type:varchar(64)" json:"list_url_id"`                        // 被点击的清单地址ID（可空，不校验）
	IPAddress string    `gorm:"type:varchar(64)" json:"ip_address"`                         // 客户端IP
	UserAgent string    `gorm:"type:varchar(1024)" json:"user_agent"`                       // 客户端UA
	Referrer  *string   `gorm:"type:varchar(1024)" json:"referrer"`                         // 来源地址（可空）
	Country   *string   `gorm:"type:varchar(100)" json:"country"`                           // 归属国家（可空）
	City      *string   `gorm:"type:varchar(100)" json:"city"`                              // 归属城市（可空）
	Device    *string   `gorm:"type:varchar(20)" json:"device"`                             // 设备类型（可空）
	Browser   *string   `gorm:"type:varchar(50)" json:"browser"`                            // 浏览器（可空）
	Converted bool      `gorm:"not null;default:false" json:"converted"`                    // 是否转化（预留，创建时恒为 false）
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // 创建时间

	List *CuratedList `gorm:"foreignKey:ListID" json:"list,omitempty"` // 清单
}

// TableName 指定表名
func (ListClick) TableName() string {
	return "list_clicks"
}
