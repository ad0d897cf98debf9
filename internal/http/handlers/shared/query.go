package shared

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// QueryParser 逐个解析查询参数，记录第一个解析失败的参数
type QueryParser struct {
	c   *gin.Context
	err error
}

// NewQueryParser 创建查询参数解析器
func NewQueryParser(c *gin.Context) *QueryParser {
	return &QueryParser{c: c}
}

// Err 返回第一个解析错误
func (p *QueryParser) Err() error {
	return p.err
}

// String 读取去除首尾空白的字符串参数
func (p *QueryParser) String(name string) string {
	return strings.TrimSpace(p.c.Query(name))
}

// Uint 读取无符号整数参数
func (p *QueryParser) Uint(name string) *uint {
	raw, ok := p.raw(name)
	if !ok {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	id := uint(value)
	return &id
}

// Int 读取整数参数
func (p *QueryParser) Int(name string) *int {
	raw, ok := p.raw(name)
	if !ok {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	return &value
}

// Bool 读取布尔参数（true/false/1/0）
func (p *QueryParser) Bool(name string) *bool {
	raw, ok := p.raw(name)
	if !ok {
		return nil
	}
	value, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	return &value
}

// Decimal 读取十进制数参数
func (p *QueryParser) Decimal(name string) *decimal.Decimal {
	raw, ok := p.raw(name)
	if !ok {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	return &value
}

// TimeFrom 读取时间下界，接受 RFC3339 或 YYYY-MM-DD
func (p *QueryParser) TimeFrom(name string) *time.Time {
	return p.timeBound(name, false)
}

// TimeTo 读取时间上界，仅日期时覆盖当天全部时间
func (p *QueryParser) TimeTo(name string) *time.Time {
	return p.timeBound(name, true)
}

func (p *QueryParser) timeBound(name string, endOfDay bool) *time.Time {
	raw, ok := p.raw(name)
	if !ok {
		return nil
	}
	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		value = value.UTC()
		return &value
	}
	value, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	if endOfDay {
		value = value.Add(24*time.Hour - time.Nanosecond)
	}
	return &value
}

func (p *QueryParser) raw(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	raw := strings.TrimSpace(p.c.Query(name))
	return raw, raw != ""
}

func (p *QueryParser) fail(name, raw string) {
	if p.err == nil {
		p.err = &QueryError{Param: name, Value: raw}
	}
}

// ParseID 解析路径中的主键参数
func ParseID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
