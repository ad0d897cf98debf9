package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// ParsePagination 解析 page/page_size，非数字或页码小于 1 时返回错误。
func ParsePagination(c *gin.Context) (int, int, error) {
	page, err := parseOptionalInt(c, "page")
	if err != nil {
		return 0, 0, err
	}
	pageSize, err := parseOptionalInt(c, "page_size")
	if err != nil {
		return 0, 0, err
	}
	if page != nil && *page < 1 {
		return 0, 0, &QueryError{Param: "page", Value: strconv.Itoa(*page)}
	}
	p, size := 1, 0
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}
	p, size = NormalizePagination(p, size)
	return p, size, nil
}

func parseOptionalInt(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &QueryError{Param: name, Value: raw}
	}
	return &value, nil
}

// QueryError 查询参数类型错误
type QueryError struct {
	Param string
	Value string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Param)
}
