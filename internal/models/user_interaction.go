package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserInteraction 用户行为埋点表（只追加）
type UserInteraction struct {
	ID              uint           `gorm:"column:interaction_id;primaryKey" json:"interaction_id"`  // 主键
	UserID          *uint          `gorm:"column:user_id;index" json:"user"`                        // 用户
	SessionID       string         `gorm:"type:varchar(100);index" json:"session_id"`               // 会话标识
	InteractionType string         `gorm:"type:varchar(50);not null;index" json:"interaction_type"` // 行为类型
	DiamondID       *uint          `gorm:"column:diamond_id;index" json:"diamond"`                  // 关联钻石
	SettingID       *uint          `gorm:"column:setting_id;index" json:"setting"`                  // 关联戒托
	ConfigID        *uint          `gorm:"column:config_id;index" json:"config"`                    // 关联定制方案
	InteractionData datatypes.JSON `gorm:"type:json" json:"interaction_data"`                       // 附加数据
	PageURL         string         `gorm:"column:page_url;type:varchar(500)" json:"page_url"`       // 页面地址
	DeviceType      string         `gorm:"type:varchar(50);index" json:"device_type"`               // 设备类型
	Browser         string         `gorm:"type:varchar(50)" json:"browser"`                         // 浏览器
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
}

// TableName 指定表名
func (UserInteraction) TableName() string {
	return "user_interactions"
}
