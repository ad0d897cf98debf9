package models

import "time"

// Favorite 收藏表（目标为钻石/戒托/定制方案之一）
type Favorite struct {
	ID        uint      `gorm:"column:favorite_id;primaryKey" json:"favorite_id"` // 主键
	UserID    *uint     `gorm:"column:user_id;index" json:"user"`                 // 所属用户
	DiamondID *uint     `gorm:"column:diamond_id;index" json:"diamond_id"`        // 收藏的钻石
	SettingID *uint     `gorm:"column:setting_id;index" json:"setting_id"`        // 收藏的戒托
	ConfigID  *uint     `gorm:"column:config_id;index" json:"config_id"`          // 收藏的定制方案
	UserNotes string    `gorm:"type:text" json:"user_notes"`                      // 备注
	CreatedAt time.Time `gorm:"index" json:"created_at"`                          // 创建时间

	Diamond *Diamond           `gorm:"foreignKey:DiamondID;references:ID" json:"-"`
	Setting *Setting           `gorm:"foreignKey:SettingID;references:ID" json:"-"`
	Config  *RingConfiguration `gorm:"foreignKey:ConfigID;references:ID" json:"-"`
}

// TableName 指定表名
func (Favorite) TableName() string {
	return "favorites"
}
