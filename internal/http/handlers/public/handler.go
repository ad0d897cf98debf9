package public

import "github.com/luxe-next/internal/provider"

// Handler 资源接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建资源处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
