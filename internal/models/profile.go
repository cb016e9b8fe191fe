package models

import "time"

// Profile 站点主理人资料（单行表，由编辑后台维护）
type Profile struct {
	ID              uint      `gorm:"primarykey" json:"id"`                       // 主键
	Name            string    `gorm:"type:varchar(100)" json:"name"`              // 昵称
	Bio             string    `gorm:"type:varchar(500)" json:"bio"`               // 简介
	ProfileImageURL string    `gorm:"type:varchar(500)" json:"profile_image_url"` // 头像
	AttentionText   string    `gorm:"type:varchar(500)" json:"attention_text"`    // 置顶提示文案
	InstagramURL    string    `gorm:"type:varchar(500)" json:"instagram_url"`     // Instagram 链接
	YoutubeURL      string    `gorm:"type:varchar(500)" json:"youtube_url"`       // YouTube 链接
	TiktokURL       string    `gorm:"type:varchar(500)" json:"tiktok_url"`        // TikTok 链接
	WhatsappURL     string    `gorm:"type:varchar(500)" json:"whatsapp_url"`      // WhatsApp 链接
	TelegramURL     string    `gorm:"type:varchar(500)" json:"telegram_url"`      // Telegram 链接
	UpdatedAt       time.Time `json:"updated_at"`                                 // 更新时间
}

// TableName 指定表名
func (Profile) TableName() string {
	return "profiles"
}
