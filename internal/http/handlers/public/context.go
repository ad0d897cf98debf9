package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

// pathID 解析 :id 路径参数，非法时按不存在处理
func pathID(c *gin.Context) (uint, bool) {
	id, ok := handlershared.ParseID(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, handlershared.Message("error.invalid_json")+": "+err.Error(), nil)
		return false
	}
	return true
}

func pagination(c *gin.Context) (int, int, bool) {
	page, pageSize, err := handlershared.ParsePagination(c)
	if err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), nil)
		return 0, 0, false
	}
	return page, pageSize, true
}

// queryOK 查询参数解析失败时返回 400
func queryOK(c *gin.Context, q *handlershared.QueryParser) bool {
	if err := q.Err(); err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), nil)
		return false
	}
	return true
}

// requiredUserID my_* 接口要求 user_id 参数
func requiredUserID(c *gin.Context) (uint, bool) {
	q := handlershared.NewQueryParser(c)
	userID := q.Uint("user_id")
	if !queryOK(c, q) {
		return 0, false
	}
	if userID == nil {
		respondError(c, response.CodeBadRequest, "error.user_id_required", nil)
		return 0, false
	}
	return *userID, true
}

func respondPage(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	response.SuccessWithPage(c, data, response.NewPagination(page, pageSize, total))
}
