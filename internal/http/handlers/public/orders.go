package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderRequest 订单头请求
type OrderRequest struct {
	User                 *uint         `json:"user"`
	OrderNumber          *string       `json:"order_number"`
	CustomerEmail        *string       `json:"customer_email"`
	CustomerFirstName    *string       `json:"customer_first_name"`
	CustomerLastName     *string       `json:"customer_last_name"`
	CustomerPhone        *string       `json:"customer_phone"`
	ShippingAddressLine1 *string       `json:"shipping_address_line1"`
	ShippingAddressLine2 *string       `json:"shipping_address_line2"`
	ShippingCity         *string       `json:"shipping_city"`
	ShippingState        *string       `json:"shipping_state"`
	ShippingPostalCode   *string       `json:"shipping_postal_code"`
	ShippingCountry      *string       `json:"shipping_country"`
	BillingAddressLine1  *string       `json:"billing_address_line1"`
	BillingAddressLine2  *string       `json:"billing_address_line2"`
	BillingCity          *string       `json:"billing_city"`
	BillingState         *string       `json:"billing_state"`
	BillingPostalCode    *string       `json:"billing_postal_code"`
	BillingCountry       *string       `json:"billing_country"`
	Subtotal             *models.Money `json:"subtotal"`
	TaxAmount            *models.Money `json:"tax_amount"`
	ShippingCost         *models.Money `json:"shipping_cost"`
	TotalAmount          *models.Money `json:"total_amount"`
	Status               *string       `json:"status"`
	PaymentMethod        *string       `json:"payment_method"`
	PaymentStatus        *string       `json:"payment_status"`
	SpecialInstructions  *string       `json:"special_instructions"`
}

func (r OrderRequest) toInput() service.OrderInput {
	return service.OrderInput{
		UserID:               r.User,
		OrderNumber:          r.OrderNumber,
		CustomerEmail:        r.CustomerEmail,
		CustomerFirstName:    r.CustomerFirstName,
		CustomerLastName:     r.CustomerLastName,
		CustomerPhone:        r.CustomerPhone,
		ShippingAddressLine1: r.ShippingAddressLine1,
		ShippingAddressLine2: r.ShippingAddressLine2,
		ShippingCity:         r.ShippingCity,
		ShippingState:        r.ShippingState,
		ShippingPostalCode:   r.ShippingPostalCode,
		ShippingCountry:      r.ShippingCountry,
		BillingAddressLine1:  r.BillingAddressLine1,
		BillingAddressLine2:  r.BillingAddressLine2,
		BillingCity:          r.BillingCity,
		BillingState:         r.BillingState,
		BillingPostalCode:    r.BillingPostalCode,
		BillingCountry:       r.BillingCountry,
		Subtotal:             r.Subtotal,
		TaxAmount:            r.TaxAmount,
		ShippingCost:         r.ShippingCost,
		TotalAmount:          r.TotalAmount,
		Status:               r.Status,
		PaymentMethod:        r.PaymentMethod,
		PaymentStatus:        r.PaymentStatus,
		SpecialInstructions:  r.SpecialInstructions,
	}
}

// OrderItemRequest 订单项请求
type OrderItemRequest struct {
	Config          *uint         `json:"config"`
	DiamondSKU      string        `json:"diamond_sku"`
	SettingSKU      string        `json:"setting_sku"`
	RingSize        string        `json:"ring_size"`
	DiamondPrice    *models.Money `json:"diamond_price"`
	SettingPrice    *models.Money `json:"setting_price"`
	ItemTotal       *models.Money `json:"item_total"`
	ItemDescription string        `json:"item_description"`
	Quantity        *int          `json:"quantity"`
}

// CreateOrderRequest 创建订单请求（订单头 + 订单项）
type CreateOrderRequest struct {
	OrderRequest
	Items []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func orderListViews(orders []models.Order) []orderListView {
	items := make([]orderListView, 0, len(orders))
	for i := range orders {
		items = append(items, newOrderListView(&orders[i]))
	}
	return items
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		UserID:        q.Uint("user"),
		Status:        q.String("status"),
		PaymentStatus: q.String("payment_status"),
		Search:        q.String("search"),
		Ordering:      q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	respondPage(c, orderListViews(orders), page, pageSize, total)
}

// MyOrders 指定用户的订单
func (h *Handler) MyOrders(c *gin.Context) {
	userID, ok := requiredUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, orderListViews(orders))
}

// GetOrder 订单详情（含订单项）
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newOrderDetailView(order))
}

// CreateOrder 创建订单，订单头与订单项同一事务写入
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	input := service.CreateOrderInput{
		OrderInput: req.toInput(),
		Items:      make([]service.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ConfigID:        item.Config,
			DiamondSKU:      item.DiamondSKU,
			SettingSKU:      item.SettingSKU,
			RingSize:        item.RingSize,
			DiamondPrice:    item.DiamondPrice,
			SettingPrice:    item.SettingPrice,
			ItemTotal:       item.ItemTotal,
			ItemDescription: item.ItemDescription,
			Quantity:        item.Quantity,
		})
	}
	order, err := h.OrderService.Create(input)
	if err != nil {
		respondServiceError(c, err, orderErrorRules)
		return
	}
	response.Created(c, newOrderDetailView(order))
}

// UpdateOrder 更新订单头（订单项创建后不可修改）
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.OrderService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, orderErrorRules)
		return
	}
	response.Success(c, newOrderDetailView(order))
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err, orderErrorRules)
		return
	}
	response.Success(c, gin.H{"status": status})
}

// DeleteOrder 删除订单及其订单项
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.OrderService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
