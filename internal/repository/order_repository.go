package repository

import (
	"time"

	"github.com/luxe-next/internal/constants"
	"github.com/luxe-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var orderOrderFields = map[string]string{
	"created_at":   "created_at",
	"total_amount": "total_amount",
}

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	List(filter OrderListFilter) ([]models.Order, int64, error)
	GetByID(id uint) (*models.Order, error)
	ExistsByOrderNumber(orderNumber string, excludeID uint) (bool, error)
	Create(order *models.Order) error
	CreateItem(item *models.OrderItem) error
	Update(order *models.Order) error
	UpdateStatus(id uint, status string, now time.Time) error
	DeleteWithItems(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 在事务中执行
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// List 订单列表（不加载订单项）
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	query = applySearch(query, filter.Search, "order_number", "customer_email")

	var orders []models.Order
	orderBy := buildOrderClause(filter.Ordering, orderOrderFields, "created_at DESC", "order_id")
	total, err := countAndFind(query, orderBy, filter.Page, filter.PageSize, &orders)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByID 获取订单及订单项
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_item_id ASC")
	}).Where("order_id = ?", id)
	found, err := findOne(query, &order)
	if err != nil || !found {
		return nil, err
	}
	return &order, nil
}

// ExistsByOrderNumber 判断订单号是否已被其他订单占用
func (r *GormOrderRepository) ExistsByOrderNumber(orderNumber string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Order{}).Where("order_number = ?", orderNumber)
	if excludeID > 0 {
		query = query.Where("order_id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建订单头（订单项单独写入）
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Omit(clause.Associations).Create(order).Error
}

// CreateItem 创建订单项
func (r *GormOrderRepository) CreateItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

// Update 更新订单头
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Omit(clause.Associations).Save(order).Error
}

// UpdateStatus 更新订单状态，首次进入 shipped/delivered 时记录时间
func (r *GormOrderRepository) UpdateStatus(id uint, status string, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("order_id = ?", id).Take(&order).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"status":     status,
			"updated_at": now,
		}
		if status == constants.OrderStatusShipped && order.ShippedAt == nil {
			updates["shipped_at"] = now
		}
		if status == constants.OrderStatusDelivered && order.DeliveredAt == nil {
			updates["delivered_at"] = now
		}
		return tx.Model(&models.Order{}).Where("order_id = ?", id).Updates(updates).Error
	})
}

// DeleteWithItems 删除订单及其订单项
func (r *GormOrderRepository) DeleteWithItems(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&models.Order{}).Error
	})
}
