package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luxe-next/internal/config"
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// maxKeyPeekBytes 提取限流 key 时最多读取的请求体字节数
const maxKeyPeekBytes = 16 << 10

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 单个写接口的限流规则
type RateLimitRule struct {
	Name          string // 计数器命名空间，如 order_create
	WindowSeconds int
	MaxRequests   int
	Key           RateLimitKeyFunc
}

// enabled 窗口或阈值未配置时不限流
func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

// NewRateLimitRule 由配置构造规则
func NewRateLimitRule(name string, cfg config.RateLimitConfig, key RateLimitKeyFunc) RateLimitRule {
	return RateLimitRule{
		Name:          name,
		WindowSeconds: cfg.WindowSeconds,
		MaxRequests:   cfg.MaxRequests,
		Key:           key,
	}
}

// 固定窗口计数，返回 {当前计数, 剩余秒数}
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimiter 基于 Redis 的写接口限流器，client 为空时全部放行
type RateLimiter struct {
	client *redis.Client
	prefix string
}

// NewRateLimiter 创建限流器，key 形如 <prefix>:rate:<rule>:<subject>
func NewRateLimiter(client *redis.Client, redisPrefix string) *RateLimiter {
	prefix := strings.TrimSpace(redisPrefix)
	if prefix == "" {
		prefix = "luxe"
	}
	return &RateLimiter{client: client, prefix: prefix + ":rate"}
}

func (l *RateLimiter) counterKey(rule RateLimitRule, c *gin.Context) string {
	subject := ""
	if rule.Key != nil {
		subject = strings.TrimSpace(rule.Key(c))
	}
	if subject == "" {
		subject = c.ClientIP()
	}
	return fmt.Sprintf("%s:%s:%s", l.prefix, rule.Name, subject)
}

// Limit 返回应用指定规则的中间件
func (l *RateLimiter) Limit(rule RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.client == nil || !rule.enabled() {
			c.Next()
			return
		}

		key := l.counterKey(rule, c)
		values, err := rateLimitScript.Run(c.Request.Context(), l.client, []string{key}, rule.WindowSeconds).Int64Slice()
		if err == nil && len(values) < 2 {
			err = fmt.Errorf("unexpected rate limit reply for %s", key)
		}
		if err != nil {
			handlershared.RespondError(c, response.CodeInternal, "error.rate_limit_unavailable", err)
			c.Abort()
			return
		}

		if values[0] > int64(rule.MaxRequests) {
			wait := retryAfterSeconds(values[1], rule.WindowSeconds)
			c.Header("Retry-After", strconv.Itoa(wait))
			handlershared.RequestLog(c).Warnw("rate_limited", "rule", rule.Name, "key", key, "count", values[0])
			response.Error(c, response.CodeTooManyRequests, fmt.Sprintf(handlershared.Message("error.rate_limited"), wait))
			c.Abort()
			return
		}
		c.Next()
	}
}

// retryAfterSeconds TTL 缺失（-1/-2）时按整个窗口计算
func retryAfterSeconds(ttl int64, window int) int {
	if ttl >= 1 {
		return int(ttl)
	}
	if window >= 1 {
		return window
	}
	return 1
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndPathID 使用 IP + 路径主键作为限流 key，如同一 IP 对同一评价点赞
func KeyByIPAndPathID(c *gin.Context) string {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.ClientIP()
	}
	return fmt.Sprintf("%s|%s", id, c.ClientIP())
}

// KeyByIPAndJSONField 使用 IP + JSON 字段作为限流 key，如埋点的 session_id
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(peekJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

// peekJSONField 读取请求体前 maxKeyPeekBytes 字节解析字段，并原样还原请求体
func peekJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	original := c.Request.Body
	head, err := io.ReadAll(io.LimitReader(original, maxKeyPeekBytes))
	c.Request.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(head), original), Closer: original}
	if err != nil || len(head) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(head, &payload); err != nil {
		return ""
	}
	if text, ok := payload[field].(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

type readCloser struct {
	io.Reader
	io.Closer
}
