package models

import "time"

// OrderItem 订单项表（SKU 与价格为下单时快照）
type OrderItem struct {
	ID              uint      `gorm:"column:order_item_id;primaryKey" json:"order_item_id"`  // 主键
	OrderID         uint      `gorm:"column:order_id;index;not null" json:"order_id"`        // 所属订单
	ConfigID        *uint     `gorm:"column:config_id;index" json:"config"`                  // 定制方案
	DiamondSKU      string    `gorm:"column:diamond_sku;type:varchar(50)" json:"diamond_sku"` // 钻石 SKU 快照
	SettingSKU      string    `gorm:"column:setting_sku;type:varchar(50)" json:"setting_sku"` // 戒托 SKU 快照
	RingSize        string    `gorm:"type:varchar(10)" json:"ring_size"`                     // 戒圈尺寸
	DiamondPrice    Money     `gorm:"type:decimal(10,2)" json:"diamond_price"`               // 钻石价格快照
	SettingPrice    Money     `gorm:"type:decimal(10,2)" json:"setting_price"`               // 戒托价格快照
	ItemTotal       Money     `gorm:"type:decimal(10,2);not null" json:"item_total"`         // 行合计
	ItemDescription string    `gorm:"type:text" json:"item_description"`                     // 描述
	Quantity        int       `gorm:"not null;default:1" json:"quantity"`                    // 数量
	CreatedAt       time.Time `json:"created_at"`                                            // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
