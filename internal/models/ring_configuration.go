package models

import "time"

// RingConfiguration 戒指定制方案表（钻石 + 戒托）
type RingConfiguration struct {
	ID           uint      `gorm:"column:config_id;primaryKey" json:"config_id"`          // 主键
	UserID       *uint     `gorm:"column:user_id;index" json:"user"`                      // 所属用户
	DiamondID    *uint     `gorm:"column:diamond_id;index" json:"diamond_id"`             // 钻石
	SettingID    *uint     `gorm:"column:setting_id;index" json:"setting_id"`             // 戒托
	RingSize     string    `gorm:"type:varchar(10)" json:"ring_size"`                     // 戒圈尺寸
	TotalPrice   Money     `gorm:"type:decimal(10,2);not null;index" json:"total_price"`  // 总价
	DiamondPrice *Money    `gorm:"type:decimal(10,2)" json:"diamond_price"`               // 钻石价格快照
	SettingPrice *Money    `gorm:"type:decimal(10,2)" json:"setting_price"`               // 戒托价格快照
	ConfigName   string    `gorm:"type:varchar(200)" json:"config_name"`                  // 方案名称
	IsSaved      bool      `gorm:"not null;index" json:"is_saved"`                        // 是否已保存
	IsOrdered    bool      `gorm:"not null;index" json:"is_ordered"`                      // 是否已下单
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                            // 更新时间

	Diamond *Diamond `gorm:"foreignKey:DiamondID;references:ID" json:"-"` // 关联钻石（可能已删除）
	Setting *Setting `gorm:"foreignKey:SettingID;references:ID" json:"-"` // 关联戒托（可能已删除）
}

// TableName 指定表名
func (RingConfiguration) TableName() string {
	return "ring_configurations"
}
