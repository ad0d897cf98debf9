package shared

// messages 接口错误消息表
var messages = map[string]string{
	"error.bad_request":                 "Invalid request",
	"error.invalid_json":                "Malformed JSON body",
	"error.invalid_id":                  "Invalid id",
	"error.not_found":                   "Not found.",
	"error.internal":                    "Internal server error",
	"error.user_id_required":            "user_id is required",
	"error.user_email_exists":           "A user with this email already exists",
	"error.reference_not_found":         "Referenced record does not exist",
	"error.favorite_target_conflict":    "A favorite must reference exactly one of diamond, setting or config",
	"error.interaction_target_conflict": "An interaction may reference at most one of diamond, setting or config",
	"error.order_number_exists":         "An order with this order number already exists",
	"error.order_status_invalid":        "Invalid status",
	"error.rate_limited":                "Request was throttled. Expected available in %d seconds.",
	"error.rate_limit_unavailable":      "Rate limiter unavailable",
	"error.store_unavailable":           "Store unavailable",
}

// Message 返回错误 key 对应的消息，未登记时原样返回 key
func Message(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
