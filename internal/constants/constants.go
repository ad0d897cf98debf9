package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses 订单状态枚举（按生命周期排序）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 支付状态常量
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// 订单号默认前缀
const OrderNumberPrefixDefault = "LUX"

// 评分范围
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 匿名评论展示名
const ReviewAnonymousName = "Anonymous"

// 用户行为类型常量
const (
	InteractionTypeView           = "view"
	InteractionTypeSearch         = "search"
	InteractionTypeAddToFavorites = "add_to_favorites"
	InteractionTypeConfigure      = "configure"
	InteractionTypeAddToCart      = "add_to_cart"
	InteractionTypeCheckout       = "checkout"
)

// 钻石形状
var DiamondShapes = []string{
	"Round", "Princess", "Cushion", "Emerald", "Oval",
	"Radiant", "Asscher", "Marquise", "Heart", "Pear",
}

// 钻石切工
var DiamondCuts = []string{"Excellent", "Very Good", "Good", "Fair", "Poor"}

// 钻石颜色
var DiamondColors = []string{"D", "E", "F", "G", "H", "I", "J", "K"}

// 钻石净度
var DiamondClarities = []string{"FL", "IF", "VVS1", "VVS2", "VS1", "VS2", "SI1", "SI2", "I1"}

// 戒托款式
var SettingStyles = []string{
	"Solitaire", "Halo", "Three-Stone", "Vintage", "Pavé",
	"Channel", "Tension", "Bezel", "Split Shank",
}

// 金属材质
var MetalTypes = []string{
	"Platinum",
	"18K White Gold", "18K Yellow Gold", "18K Rose Gold",
	"14K White Gold", "14K Yellow Gold", "14K Rose Gold",
}

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	for _, item := range OrderStatuses {
		if item == status {
			return true
		}
	}
	return false
}
