package app

import (
	"context"
	"errors"

	"github.com/luxe-next/internal/config"
	"github.com/luxe-next/internal/provider"
	"github.com/luxe-next/internal/router"
	"github.com/luxe-next/internal/telemetry"
)

// BuildRunner 构建服务运行器
func BuildRunner(ctx context.Context, cfg *config.Config, version string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	// 链路追踪需在路由挂载 otelgin 之前就绪
	shutdown, err := telemetry.Init(ctx, cfg.Telemetry, version)
	if err != nil {
		return nil, err
	}

	container := provider.NewContainer(cfg)
	engine := router.SetupRouter(cfg, container)

	services := []Service{
		NewHTTPService(cfg.Server.Addr(), engine),
		NewResourceService(shutdown),
	}
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(context.Background(), opts.Config, opts.Version)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "version", opts.Version)
	return RunWithOptions(runner, opts)
}
