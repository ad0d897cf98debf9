package app

import (
	"context"
	"errors"

	"github.com/luxe-next/internal/cache"
	"github.com/luxe-next/internal/telemetry"
)

// ResourceService 托管进程级资源，停止时刷新链路追踪并关闭 Redis
type ResourceService struct {
	shutdownTracing telemetry.ShutdownFunc
	closeCache      func() error
}

// NewResourceService 创建资源托管服务
func NewResourceService(shutdownTracing telemetry.ShutdownFunc) *ResourceService {
	return &ResourceService{
		shutdownTracing: shutdownTracing,
		closeCache:      cache.Close,
	}
}

// Name 服务名称
func (s *ResourceService) Name() string {
	return "resources"
}

// Start 阻塞至上下文结束
func (s *ResourceService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Stop 释放资源
func (s *ResourceService) Stop(ctx context.Context) error {
	var errs []error
	if s.shutdownTracing != nil {
		if err := s.shutdownTracing(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if s.closeCache != nil {
		if err := s.closeCache(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
