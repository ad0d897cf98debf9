package main

import (
	"context"
	"fmt"
	"time"

	"github.com/luxe-next/internal/config"
	"github.com/luxe-next/internal/logger"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/provider"
	"github.com/luxe-next/internal/service"

	"github.com/spf13/cobra"
)

var (
	diamondCount int
	settingCount int
	seedValue    int64
	batchSize    int
	skipMigrate  bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Luxe Rings 目录样例数据工具",
	Long: `生成或清空钻石、戒托样例数据。

Subcommands:
  catalog - 按目录词表写入钻石与戒托
  reset   - 清空全部业务表并清除统计缓存`,
	SilenceUsage: true,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "写入钻石与戒托样例数据",
	Long: `按固定随机种子写入样例数据，已存在的 SKU 会被跳过。

Examples:
  seed catalog                              # 默认 50 颗钻石、12 款戒托
  seed catalog --diamonds 200 --seed 7      # 指定数量与随机种子
  seed catalog --batch-size 50              # 批量写入大小`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeedCatalog(cmd.Context())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "清空全部业务数据",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&skipMigrate, "skip-migrate", false, "跳过自动迁移")

	catalogCmd.Flags().IntVar(&diamondCount, "diamonds", 50, "钻石数量")
	catalogCmd.Flags().IntVar(&settingCount, "settings", 12, "戒托数量")
	catalogCmd.Flags().Int64Var(&seedValue, "seed", 42, "随机种子")
	catalogCmd.Flags().IntVar(&batchSize, "batch-size", 100, "批量写入大小")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(resetCmd)
}

// bootstrap 加载配置并初始化数据库与缓存
func bootstrap() (*provider.Container, error) {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	if err := models.InitDB(cfg.Database.ToDBOptions()); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if !skipMigrate {
		if err := models.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}
	return provider.NewContainer(cfg), nil
}

func runSeedCatalog(ctx context.Context) error {
	container, err := bootstrap()
	if err != nil {
		return err
	}
	start := time.Now()
	result, err := service.NewCatalogSeeder(container.DB).Seed(service.SeedOptions{
		Diamonds:  diamondCount,
		Settings:  settingCount,
		Seed:      seedValue,
		BatchSize: batchSize,
	})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	invalidateStatistics(ctx, container)
	logger.Infow("seed_catalog_done",
		"diamonds_created", result.DiamondsCreated,
		"settings_created", result.SettingsCreated,
		"skipped", result.Skipped,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	fmt.Printf("created %d diamonds, %d settings (skipped %d)\n",
		result.DiamondsCreated, result.SettingsCreated, result.Skipped)
	return nil
}

func runReset(ctx context.Context) error {
	container, err := bootstrap()
	if err != nil {
		return err
	}
	if err := service.NewCatalogSeeder(container.DB).Reset(); err != nil {
		return fmt.Errorf("reset data: %w", err)
	}
	invalidateStatistics(ctx, container)
	logger.Infow("seed_reset_done")
	fmt.Println("all business tables cleared")
	return nil
}

func invalidateStatistics(ctx context.Context, container *provider.Container) {
	if err := container.CatalogService.InvalidateStatistics(ctx); err != nil {
		logger.Warnw("seed_statistics_invalidate_failed", "error", err)
	}
}
