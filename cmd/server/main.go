package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/luxe-next/internal/app"
	"github.com/luxe-next/internal/config"
	"github.com/luxe-next/internal/logger"
	"github.com/luxe-next/internal/models"

	"github.com/gin-gonic/gin"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入
var version = "dev"

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	if err := models.InitDB(cfg.Database.ToDBOptions()); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Version: version,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║                  💍 Luxe Rings API 启动中                    ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + "██╗     ██╗   ██╗██╗  ██╗███████╗" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║   ██║╚██╗██╔╝██╔════╝" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║   ██║ ╚███╔╝ █████╗  " + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║   ██║ ██╔██╗ ██╔══╝  " + ansiReset)
	fmt.Println(ansiCyan + "███████╗╚██████╔╝██╔╝ ██╗███████╗" + ansiReset)
	fmt.Println(ansiCyan + "╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Diamonds · Settings · Custom Rings" + ansiReset)
	fmt.Println(ansiDim + "version " + version + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
