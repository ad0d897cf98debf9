package models

import "time"

// Order 订单表（客户与地址信息为下单时快照）
type Order struct {
	ID                   uint       `gorm:"column:order_id;primaryKey" json:"order_id"`                     // 主键
	UserID               *uint      `gorm:"column:user_id;index" json:"user"`                               // 下单用户
	OrderNumber          string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`      // 订单号
	CustomerEmail        string     `gorm:"type:varchar(255);not null;index" json:"customer_email"`         // 客户邮箱
	CustomerFirstName    string     `gorm:"type:varchar(100)" json:"customer_first_name"`                   // 客户名
	CustomerLastName     string     `gorm:"type:varchar(100)" json:"customer_last_name"`                    // 客户姓
	CustomerPhone        string     `gorm:"type:varchar(20)" json:"customer_phone"`                         // 客户电话
	ShippingAddressLine1 string     `gorm:"column:shipping_address_line1;type:varchar(255)" json:"shipping_address_line1"` // 收货地址1
	ShippingAddressLine2 string     `gorm:"column:shipping_address_line2;type:varchar(255)" json:"shipping_address_line2"` // 收货地址2
	ShippingCity         string     `gorm:"type:varchar(100)" json:"shipping_city"`                         // 收货城市
	ShippingState        string     `gorm:"type:varchar(100)" json:"shipping_state"`                        // 收货州/省
	ShippingPostalCode   string     `gorm:"type:varchar(20)" json:"shipping_postal_code"`                   // 收货邮编
	ShippingCountry      string     `gorm:"type:varchar(100)" json:"shipping_country"`                      // 收货国家
	BillingAddressLine1  string     `gorm:"column:billing_address_line1;type:varchar(255)" json:"billing_address_line1"` // 账单地址1
	BillingAddressLine2  string     `gorm:"column:billing_address_line2;type:varchar(255)" json:"billing_address_line2"` // 账单地址2
	BillingCity          string     `gorm:"type:varchar(100)" json:"billing_city"`                          // 账单城市
	BillingState         string     `gorm:"type:varchar(100)" json:"billing_state"`                         // 账单州/省
	BillingPostalCode    string     `gorm:"type:varchar(20)" json:"billing_postal_code"`                    // 账单邮编
	BillingCountry       string     `gorm:"type:varchar(100)" json:"billing_country"`                       // 账单国家
	Subtotal             Money      `gorm:"type:decimal(10,2);not null" json:"subtotal"`                    // 小计
	TaxAmount            Money      `gorm:"type:decimal(10,2)" json:"tax_amount"`                           // 税费
	ShippingCost         Money      `gorm:"type:decimal(10,2)" json:"shipping_cost"`                        // 运费
	TotalAmount          Money      `gorm:"type:decimal(10,2);not null;index" json:"total_amount"`          // 总金额
	Status               string     `gorm:"type:varchar(50);index" json:"status"`                           // 订单状态
	PaymentMethod        string     `gorm:"type:varchar(50)" json:"payment_method"`                         // 支付方式
	PaymentStatus        string     `gorm:"type:varchar(50);index" json:"payment_status"`                   // 支付状态
	SpecialInstructions  string     `gorm:"type:text" json:"special_instructions"`                          // 备注
	CreatedAt            time.Time  `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt            time.Time  `json:"updated_at"`                                                     // 更新时间
	ShippedAt            *time.Time `json:"shipped_at"`                                                     // 发货时间
	DeliveredAt          *time.Time `json:"delivered_at"`                                                   // 送达时间

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
