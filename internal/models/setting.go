package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting 戒托表
type Setting struct {
	ID               uint                `gorm:"column:setting_id;primaryKey" json:"setting_id"`              // 主键
	SKU              string              `gorm:"column:sku;type:varchar(50);uniqueIndex;not null" json:"sku"` // 库存编码
	Name             string              `gorm:"type:varchar(200);not null" json:"name"`                      // 名称
	Description      string              `gorm:"type:text" json:"description"`                                // 描述
	StyleType        string              `gorm:"type:varchar(50);not null;index" json:"style_type"`           // 款式
	MetalType        string              `gorm:"type:varchar(30);not null;index" json:"metal_type"`           // 金属材质
	BasePrice        Money               `gorm:"type:decimal(10,2);not null;index" json:"base_price"`         // 基础价格
	CompatibleShapes string              `gorm:"type:text" json:"compatible_shapes"`                          // 适配钻石形状（逗号分隔）
	MinCarat         decimal.NullDecimal `gorm:"type:decimal(4,2)" json:"min_carat"`                          // 最小克拉
	MaxCarat         decimal.NullDecimal `gorm:"type:decimal(4,2)" json:"max_carat"`                          // 最大克拉
	ImageURL         string              `gorm:"column:image_url;type:varchar(500)" json:"image_url"`         // 主图
	ThumbnailURL     string              `gorm:"column:thumbnail_url;type:varchar(500)" json:"thumbnail_url"` // 缩略图
	IsAvailable      bool                `gorm:"not null;index" json:"is_available"`                          // 是否在售
	PopularityScore  int                 `gorm:"not null;default:0;index" json:"popularity_score"`            // 热度
	CreatedAt        time.Time           `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt        time.Time           `json:"updated_at"`                                                  // 更新时间
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
