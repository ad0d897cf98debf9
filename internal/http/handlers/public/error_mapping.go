package public

import (
	"errors"

	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
// detail 为 true 时使用错误自身的描述作为消息。
type mappedHandlerError struct {
	target error
	code   int
	key    string
	detail bool
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			if rule.detail {
				respondErrorWithMsg(c, rule.code, err.Error(), nil)
				return
			}
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var commonErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
	{target: service.ErrReferenceNotFound, code: response.CodeBadRequest, detail: true},
}

var userErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, detail: true},
	{target: service.ErrUserEmailExists, code: response.CodeBadRequest, key: "error.user_email_exists"},
}

var configurationErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidConfiguration, code: response.CodeBadRequest, detail: true},
}

var favoriteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidFavorite, code: response.CodeBadRequest, key: "error.favorite_target_conflict"},
	{target: service.ErrFavoriteTargetConflict, code: response.CodeBadRequest, key: "error.favorite_target_conflict"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidReview, code: response.CodeBadRequest, detail: true},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidOrder, code: response.CodeBadRequest, detail: true},
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest, detail: true},
	{target: service.ErrOrderNumberExists, code: response.CodeBadRequest, key: "error.order_number_exists"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
}

var interactionErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInteraction, code: response.CodeBadRequest, detail: true},
	{target: service.ErrInteractionTargetConflict, code: response.CodeBadRequest, key: "error.interaction_target_conflict"},
}

func respondServiceError(c *gin.Context, err error, rules ...[]mappedHandlerError) {
	groups := append([][]mappedHandlerError{commonErrorRules}, rules...)
	respondWithMappedError(c, err, concatMappedHandlerErrors(groups...), response.CodeInternal, "error.internal")
}
