package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Diamond 钻石表（实验室培育钻石）
type Diamond struct {
	ID                uint                `gorm:"column:diamond_id;primaryKey" json:"diamond_id"`          // 主键
	SKU               string              `gorm:"column:sku;type:varchar(50);uniqueIndex;not null" json:"sku"` // 库存编码
	Carat             decimal.Decimal     `gorm:"type:decimal(4,2);not null;index" json:"carat"`           // 克拉
	Cut               string              `gorm:"type:varchar(20);not null;index" json:"cut"`              // 切工
	Color             string              `gorm:"type:varchar(5);not null;index" json:"color"`             // 颜色
	Clarity           string              `gorm:"type:varchar(10);not null;index" json:"clarity"`          // 净度
	Shape             string              `gorm:"type:varchar(20);not null;index" json:"shape"`            // 形状
	LengthMM          decimal.NullDecimal `gorm:"column:length_mm;type:decimal(5,2)" json:"length_mm"`     // 长度(mm)
	WidthMM           decimal.NullDecimal `gorm:"column:width_mm;type:decimal(5,2)" json:"width_mm"`       // 宽度(mm)
	DepthMM           decimal.NullDecimal `gorm:"column:depth_mm;type:decimal(5,2)" json:"depth_mm"`       // 深度(mm)
	TablePercent      decimal.NullDecimal `gorm:"type:decimal(4,1)" json:"table_percent"`                  // 台面比
	DepthPercent      decimal.NullDecimal `gorm:"type:decimal(4,1)" json:"depth_percent"`                  // 全深比
	BasePrice         Money               `gorm:"type:decimal(10,2);not null;index" json:"base_price"`     // 基础价格
	CertificateType   string              `gorm:"type:varchar(50)" json:"certificate_type"`                // 证书类型
	CertificateNumber string              `gorm:"type:varchar(100)" json:"certificate_number"`             // 证书编号
	Polish            string              `gorm:"type:varchar(20)" json:"polish"`                          // 抛光
	Symmetry          string              `gorm:"type:varchar(20)" json:"symmetry"`                        // 对称性
	Fluorescence      string              `gorm:"type:varchar(20)" json:"fluorescence"`                    // 荧光
	ImageURL          string              `gorm:"column:image_url;type:varchar(500)" json:"image_url"`     // 图片
	VideoURL          string              `gorm:"column:video_url;type:varchar(500)" json:"video_url"`     // 视频
	IsAvailable       bool                `gorm:"not null;index" json:"is_available"`                      // 是否在售
	CreatedAt         time.Time           `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt         time.Time           `json:"updated_at"`                                              // 更新时间
}

// TableName 指定表名
func (Diamond) TableName() string {
	return "diamonds"
}
