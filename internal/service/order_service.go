package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luxe-next/internal/constants"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderNumberAttempts = 5

// OrderService 订单服务
type OrderService struct {
	repo         repository.OrderRepository
	configs      repository.ConfigurationRepository
	refs         referenceChecker
	numberPrefix string
	now          func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(
	repo repository.OrderRepository,
	users repository.UserRepository,
	configs repository.ConfigurationRepository,
	numberPrefix string,
) *OrderService {
	numberPrefix = strings.TrimSpace(numberPrefix)
	if numberPrefix == "" {
		numberPrefix = constants.OrderNumberPrefixDefault
	}
	return &OrderService{
		repo:         repo,
		configs:      configs,
		refs:         referenceChecker{users: users},
		numberPrefix: numberPrefix,
		now:          models.NowUTC,
	}
}

// OrderInput 订单头输入，nil 表示不修改
type OrderInput struct {
	UserID               *uint
	OrderNumber          *string `validate:"omitempty,max=50"`
	CustomerEmail        *string `validate:"omitempty,email,max=255"`
	CustomerFirstName    *string `validate:"omitempty,max=100"`
	CustomerLastName     *string `validate:"omitempty,max=100"`
	CustomerPhone        *string `validate:"omitempty,max=20"`
	ShippingAddressLine1 *string `validate:"omitempty,max=255"`
	ShippingAddressLine2 *string `validate:"omitempty,max=255"`
	ShippingCity         *string `validate:"omitempty,max=100"`
	ShippingState        *string `validate:"omitempty,max=100"`
	ShippingPostalCode   *string `validate:"omitempty,max=20"`
	ShippingCountry      *string `validate:"omitempty,max=100"`
	BillingAddressLine1  *string `validate:"omitempty,max=255"`
	BillingAddressLine2  *string `validate:"omitempty,max=255"`
	BillingCity          *string `validate:"omitempty,max=100"`
	BillingState         *string `validate:"omitempty,max=100"`
	BillingPostalCode    *string `validate:"omitempty,max=20"`
	BillingCountry       *string `validate:"omitempty,max=100"`
	Subtotal             *models.Money
	TaxAmount            *models.Money
	ShippingCost         *models.Money
	TotalAmount          *models.Money
	Status               *string
	PaymentMethod        *string `validate:"omitempty,max=50"`
	PaymentStatus        *string `validate:"omitempty,max=50"`
	SpecialInstructions  *string
}

// OrderItemInput 订单项输入
type OrderItemInput struct {
	ConfigID        *uint
	DiamondSKU      string `validate:"max=50"`
	SettingSKU      string `validate:"max=50"`
	RingSize        string `validate:"max=10"`
	DiamondPrice    *models.Money
	SettingPrice    *models.Money
	ItemTotal       *models.Money `validate:"required"`
	ItemDescription string
	Quantity        *int `validate:"omitempty,min=1"`
}

// CreateOrderInput 创建订单输入（订单头 + 订单项）
type CreateOrderInput struct {
	OrderInput
	Items []OrderItemInput
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(filter)
}

// ListByUser 指定用户的全部订单
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	rows, _, err := s.repo.List(repository.OrderListFilter{UserID: &userID})
	return rows, err
}

// GetByID 获取订单及订单项
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Create 在同一事务内写入订单头与订单项，任一订单项校验失败则整体回滚
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	header := normalizeOrderInput(input.OrderInput)
	if header.CustomerEmail == nil || *header.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customer_email is required", ErrInvalidOrder)
	}
	if header.Subtotal == nil || header.TotalAmount == nil {
		return nil, fmt.Errorf("%w: subtotal and total_amount are required", ErrInvalidOrder)
	}
	if err := s.validateHeader(header); err != nil {
		return nil, err
	}
	if err := s.refs.check(references{UserID: header.UserID}); err != nil {
		return nil, err
	}

	order := &models.Order{
		Status:        constants.OrderStatusPending,
		PaymentStatus: constants.PaymentStatusPending,
	}
	applyOrderInput(order, header)
	if header.Status != nil {
		stampOrderStatus(order, order.Status, s.now())
	}

	err := s.repo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)
		if order.OrderNumber == "" {
			number, err := s.generateOrderNumber(orderRepo)
			if err != nil {
				return err
			}
			order.OrderNumber = number
		} else {
			exists, err := orderRepo.ExistsByOrderNumber(order.OrderNumber, 0)
			if err != nil {
				return err
			}
			if exists {
				return ErrOrderNumberExists
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		configRepo := s.configs.WithTx(tx)
		for idx, itemInput := range input.Items {
			item, err := buildOrderItem(order.ID, itemInput)
			if err != nil {
				return fmt.Errorf("items[%d]: %w", idx, err)
			}
			if item.ConfigID != nil {
				config, err := configRepo.GetByID(*item.ConfigID)
				if err != nil {
					return err
				}
				if config == nil {
					return fmt.Errorf("items[%d]: %w: configuration %d", idx, ErrReferenceNotFound, *item.ConfigID)
				}
			}
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(order.ID)
}

// Update 部分更新订单头，订单项只能在创建时写入
func (s *OrderService) Update(id uint, input OrderInput) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	input = normalizeOrderInput(input)
	if input.CustomerEmail != nil && *input.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customer_email cannot be blank", ErrInvalidOrder)
	}
	if input.OrderNumber != nil && *input.OrderNumber == "" {
		return nil, fmt.Errorf("%w: order_number cannot be blank", ErrInvalidOrder)
	}
	if err := s.validateHeader(input); err != nil {
		return nil, err
	}
	if err := s.refs.check(references{UserID: input.UserID}); err != nil {
		return nil, err
	}
	if input.OrderNumber != nil && *input.OrderNumber != order.OrderNumber {
		exists, err := s.repo.ExistsByOrderNumber(*input.OrderNumber, order.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrOrderNumberExists
		}
	}

	previousStatus := order.Status
	applyOrderInput(order, input)
	if order.Status != previousStatus {
		stampOrderStatus(order, order.Status, s.now())
	}
	order.Items = nil
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// UpdateStatus 更新订单状态并返回新状态
func (s *OrderService) UpdateStatus(id uint, status string) (string, error) {
	status = strings.TrimSpace(status)
	if !constants.IsValidOrderStatus(status) {
		return "", ErrOrderStatusInvalid
	}
	if err := s.repo.UpdateStatus(id, status, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return status, nil
}

// Delete 删除订单及其订单项
func (s *OrderService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.DeleteWithItems(id)
}

func (s *OrderService) validateHeader(input OrderInput) error {
	if err := validateStruct(ErrInvalidOrder, input); err != nil {
		return err
	}
	if input.Status != nil && !constants.IsValidOrderStatus(*input.Status) {
		return ErrOrderStatusInvalid
	}
	for _, amount := range []*models.Money{input.Subtotal, input.TaxAmount, input.ShippingCost, input.TotalAmount} {
		if amount != nil && amount.IsNegative() {
			return fmt.Errorf("%w: amounts must not be negative", ErrInvalidOrder)
		}
	}
	return nil
}

func (s *OrderService) generateOrderNumber(repo repository.OrderRepository) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		number := s.numberPrefix + "-" + suffix
		exists, err := repo.ExistsByOrderNumber(number, 0)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", ErrOrderNumberExists
}

func buildOrderItem(orderID uint, input OrderItemInput) (*models.OrderItem, error) {
	input.DiamondSKU = strings.TrimSpace(input.DiamondSKU)
	input.SettingSKU = strings.TrimSpace(input.SettingSKU)
	input.RingSize = strings.TrimSpace(input.RingSize)
	if err := validateStruct(ErrInvalidOrderItem, input); err != nil {
		return nil, err
	}
	for _, amount := range []*models.Money{input.DiamondPrice, input.SettingPrice, input.ItemTotal} {
		if amount != nil && amount.IsNegative() {
			return nil, fmt.Errorf("%w: amounts must not be negative", ErrInvalidOrderItem)
		}
	}
	item := &models.OrderItem{
		OrderID:         orderID,
		ConfigID:        input.ConfigID,
		DiamondSKU:      input.DiamondSKU,
		SettingSKU:      input.SettingSKU,
		RingSize:        input.RingSize,
		ItemTotal:       *input.ItemTotal,
		ItemDescription: input.ItemDescription,
		Quantity:        1,
	}
	if input.DiamondPrice != nil {
		item.DiamondPrice = *input.DiamondPrice
	}
	if input.SettingPrice != nil {
		item.SettingPrice = *input.SettingPrice
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	return item, nil
}

// stampOrderStatus 首次进入 shipped/delivered 时记录时间
func stampOrderStatus(order *models.Order, status string, now time.Time) {
	switch status {
	case constants.OrderStatusShipped:
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
	case constants.OrderStatusDelivered:
		if order.DeliveredAt == nil {
			order.DeliveredAt = &now
		}
	}
}

func normalizeOrderInput(input OrderInput) OrderInput {
	for _, field := range []**string{
		&input.OrderNumber, &input.CustomerEmail, &input.CustomerFirstName, &input.CustomerLastName,
		&input.CustomerPhone, &input.ShippingAddressLine1, &input.ShippingAddressLine2, &input.ShippingCity,
		&input.ShippingState, &input.ShippingPostalCode, &input.ShippingCountry, &input.BillingAddressLine1,
		&input.BillingAddressLine2, &input.BillingCity, &input.BillingState, &input.BillingPostalCode,
		&input.BillingCountry, &input.Status, &input.PaymentMethod, &input.PaymentStatus,
	} {
		*field = trimPtr(*field)
	}
	return input
}

func applyOrderInput(order *models.Order, input OrderInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setMoney := func(dst *models.Money, src *models.Money) {
		if src != nil {
			*dst = *src
		}
	}
	if input.UserID != nil {
		order.UserID = input.UserID
	}
	setString(&order.OrderNumber, input.OrderNumber)
	setString(&order.CustomerEmail, input.CustomerEmail)
	setString(&order.CustomerFirstName, input.CustomerFirstName)
	setString(&order.CustomerLastName, input.CustomerLastName)
	setString(&order.CustomerPhone, input.CustomerPhone)
	setString(&order.ShippingAddressLine1, input.ShippingAddressLine1)
	setString(&order.ShippingAddressLine2, input.ShippingAddressLine2)
	setString(&order.ShippingCity, input.ShippingCity)
	setString(&order.ShippingState, input.ShippingState)
	setString(&order.ShippingPostalCode, input.ShippingPostalCode)
	setString(&order.ShippingCountry, input.ShippingCountry)
	setString(&order.BillingAddressLine1, input.BillingAddressLine1)
	setString(&order.BillingAddressLine2, input.BillingAddressLine2)
	setString(&order.BillingCity, input.BillingCity)
	setString(&order.BillingState, input.BillingState)
	setString(&order.BillingPostalCode, input.BillingPostalCode)
	setString(&order.BillingCountry, input.BillingCountry)
	setMoney(&order.Subtotal, input.Subtotal)
	setMoney(&order.TaxAmount, input.TaxAmount)
	setMoney(&order.ShippingCost, input.ShippingCost)
	setMoney(&order.TotalAmount, input.TotalAmount)
	setString(&order.Status, input.Status)
	setString(&order.PaymentMethod, input.PaymentMethod)
	setString(&order.PaymentStatus, input.PaymentStatus)
	setString(&order.SpecialInstructions, input.SpecialInstructions)
}
