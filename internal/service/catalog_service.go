package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/luxe-next/internal/cache"
	"github.com/luxe-next/internal/logger"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"github.com/shopspring/decimal"
)

// DiamondStatisticsCachePrefix 钻石统计缓存 key 前缀
const DiamondStatisticsCachePrefix = "diamond_stats"

// CatalogService 钻石与戒托目录服务（只读）
type CatalogService struct {
	diamonds repository.DiamondRepository
	settings repository.SettingRepository
	statsTTL time.Duration
}

// NewCatalogService 创建目录服务
func NewCatalogService(diamonds repository.DiamondRepository, settings repository.SettingRepository, statsTTL time.Duration) *CatalogService {
	return &CatalogService{diamonds: diamonds, settings: settings, statsTTL: statsTTL}
}

// ListDiamonds 在售钻石列表
func (s *CatalogService) ListDiamonds(filter repository.DiamondListFilter) ([]models.Diamond, int64, error) {
	return s.diamonds.List(filter)
}

// GetDiamond 获取在售钻石
func (s *CatalogService) GetDiamond(id uint) (*models.Diamond, error) {
	diamond, err := s.diamonds.GetAvailableByID(id)
	if err != nil {
		return nil, err
	}
	if diamond == nil {
		return nil, ErrNotFound
	}
	return diamond, nil
}

// ListSettings 在售戒托列表
func (s *CatalogService) ListSettings(filter repository.SettingListFilter) ([]models.Setting, int64, error) {
	return s.settings.List(filter)
}

// GetSetting 获取在售戒托
func (s *CatalogService) GetSetting(id uint) (*models.Setting, error) {
	setting, err := s.settings.GetAvailableByID(id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrNotFound
	}
	return setting, nil
}

// cachedDiamondStatistics 统计结果的缓存结构
type cachedDiamondStatistics struct {
	TotalCount int64                   `json:"total_count"`
	MinCarat   decimal.Decimal         `json:"min_carat"`
	MaxCarat   decimal.Decimal         `json:"max_carat"`
	MinPrice   models.Money            `json:"min_price"`
	MaxPrice   models.Money            `json:"max_price"`
	Shapes     []repository.ShapeCount `json:"shapes"`
	Cuts       []repository.CutCount   `json:"cuts"`
}

// DiamondStatistics 钻石统计，Redis 启用时按筛选条件缓存
func (s *CatalogService) DiamondStatistics(ctx context.Context, filter repository.DiamondListFilter) (*repository.DiamondStatistics, error) {
	// 统计与分页排序无关
	filter.Page, filter.PageSize, filter.Ordering = 0, 0, ""
	key := diamondStatisticsKey(filter)

	var cached cachedDiamondStatistics
	if s.statsTTL > 0 {
		hit, err := cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Warnw("diamond_statistics_cache_get_failed", "key", key, "error", err)
		} else if hit {
			return &repository.DiamondStatistics{
				TotalCount: cached.TotalCount,
				MinCarat:   cached.MinCarat,
				MaxCarat:   cached.MaxCarat,
				MinPrice:   cached.MinPrice,
				MaxPrice:   cached.MaxPrice,
				Shapes:     cached.Shapes,
				Cuts:       cached.Cuts,
			}, nil
		}
	}

	stats, err := s.diamonds.Statistics(filter)
	if err != nil {
		return nil, err
	}
	if s.statsTTL > 0 {
		payload := cachedDiamondStatistics{
			TotalCount: stats.TotalCount,
			MinCarat:   stats.MinCarat,
			MaxCarat:   stats.MaxCarat,
			MinPrice:   stats.MinPrice,
			MaxPrice:   stats.MaxPrice,
			Shapes:     stats.Shapes,
			Cuts:       stats.Cuts,
		}
		if err := cache.SetJSON(ctx, key, payload, s.statsTTL); err != nil {
			logger.Warnw("diamond_statistics_cache_set_failed", "key", key, "error", err)
		}
	}
	return stats, nil
}

// InvalidateStatistics 清除全部钻石统计缓存
func (s *CatalogService) InvalidateStatistics(ctx context.Context) error {
	_, err := cache.DelByPrefix(ctx, DiamondStatisticsCachePrefix+":")
	return err
}

func diamondStatisticsKey(filter repository.DiamondListFilter) string {
	decimalKey := func(v *decimal.Decimal) string {
		if v == nil {
			return ""
		}
		return v.String()
	}
	raw := strings.Join([]string{
		strings.TrimSpace(filter.Cut),
		strings.TrimSpace(filter.Color),
		strings.TrimSpace(filter.Clarity),
		strings.TrimSpace(filter.Shape),
		strings.ToLower(strings.TrimSpace(filter.Search)),
		decimalKey(filter.MinCarat),
		decimalKey(filter.MaxCarat),
		decimalKey(filter.MinPrice),
		decimalKey(filter.MaxPrice),
	}, "|")
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", DiamondStatisticsCachePrefix, hex.EncodeToString(sum[:]))
}
