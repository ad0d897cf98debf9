package service

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/luxe-next/internal/constants"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedOptions 目录样例数据参数
type SeedOptions struct {
	Diamonds  int
	Settings  int
	Seed      int64
	BatchSize int
}

// SeedResult 样例数据写入结果
type SeedResult struct {
	DiamondsCreated int
	SettingsCreated int
	Skipped         int
}

// CatalogSeeder 按目录词表生成钻石与戒托样例数据
type CatalogSeeder struct {
	db *gorm.DB
}

// NewCatalogSeeder 创建目录样例数据生成器
func NewCatalogSeeder(db *gorm.DB) *CatalogSeeder {
	return &CatalogSeeder{db: db}
}

// Seed 写入样例数据，已存在的 SKU 跳过
func (s *CatalogSeeder) Seed(opts SeedOptions) (*SeedResult, error) {
	if opts.Diamonds < 0 || opts.Settings < 0 {
		return nil, fmt.Errorf("seed counts must not be negative")
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	result := &SeedResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		diamondRepo := repository.NewDiamondRepository(tx)
		settingRepo := repository.NewSettingRepository(tx)

		diamonds := make([]models.Diamond, 0, opts.Diamonds)
		for i := 1; i <= opts.Diamonds; i++ {
			diamond := buildSampleDiamond(rng, i)
			exists, err := diamondRepo.ExistsBySKU(diamond.SKU)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped++
				continue
			}
			diamonds = append(diamonds, diamond)
		}
		if err := diamondRepo.CreateInBatches(diamonds, opts.BatchSize); err != nil {
			return err
		}
		result.DiamondsCreated = len(diamonds)

		settings := make([]models.Setting, 0, opts.Settings)
		for i := 1; i <= opts.Settings; i++ {
			setting := buildSampleSetting(rng, i)
			exists, err := settingRepo.ExistsBySKU(setting.SKU)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped++
				continue
			}
			settings = append(settings, setting)
		}
		if err := settingRepo.CreateInBatches(settings, opts.BatchSize); err != nil {
			return err
		}
		result.SettingsCreated = len(settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reset 清空全部业务表（订单项先于订单删除）
func (s *CatalogSeeder) Reset() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderItem{},
			&models.Order{},
			&models.UserInteraction{},
			&models.Review{},
			&models.Favorite{},
			&models.RingConfiguration{},
			&models.Setting{},
			&models.Diamond{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func buildSampleDiamond(rng *rand.Rand, index int) models.Diamond {
	shape := constants.DiamondShapes[rng.Intn(len(constants.DiamondShapes))]
	cut := constants.DiamondCuts[rng.Intn(len(constants.DiamondCuts))]
	color := constants.DiamondColors[rng.Intn(len(constants.DiamondColors))]
	clarity := constants.DiamondClarities[rng.Intn(len(constants.DiamondClarities))]

	// 0.30 ~ 4.00 克拉
	carat := decimal.NewFromInt(int64(30 + rng.Intn(371))).Div(decimal.NewFromInt(100))
	perCarat := decimal.NewFromInt(int64(900 + rng.Intn(1600)))
	price := carat.Mul(carat).Mul(perCarat).Add(decimal.NewFromInt(400))

	length := carat.Mul(decimal.RequireFromString("2.1")).Add(decimal.RequireFromString("4.2")).Round(2)
	depthPct := decimal.NewFromInt(int64(590 + rng.Intn(40))).Div(decimal.NewFromInt(10))
	tablePct := decimal.NewFromInt(int64(540 + rng.Intn(60))).Div(decimal.NewFromInt(10))

	return models.Diamond{
		SKU:               fmt.Sprintf("LD-%s-%05d", strings.ToUpper(shape[:3]), index),
		Carat:             carat,
		Cut:               cut,
		Color:             color,
		Clarity:           clarity,
		Shape:             shape,
		LengthMM:          decimal.NewNullDecimal(length),
		WidthMM:           decimal.NewNullDecimal(length.Mul(decimal.RequireFromString("0.98")).Round(2)),
		DepthMM:           decimal.NewNullDecimal(length.Mul(depthPct).Div(decimal.NewFromInt(100)).Round(2)),
		TablePercent:      decimal.NewNullDecimal(tablePct),
		DepthPercent:      decimal.NewNullDecimal(depthPct),
		BasePrice:         models.NewMoneyFromDecimal(price),
		CertificateType:   "IGI",
		CertificateNumber: fmt.Sprintf("LG%09d", rng.Intn(1_000_000_000)),
		Polish:            "Excellent",
		Symmetry:          "Excellent",
		Fluorescence:      "None",
		IsAvailable:       rng.Intn(10) != 0,
	}
}

func buildSampleSetting(rng *rand.Rand, index int) models.Setting {
	style := constants.SettingStyles[rng.Intn(len(constants.SettingStyles))]
	metal := constants.MetalTypes[rng.Intn(len(constants.MetalTypes))]

	shapeCount := 1 + rng.Intn(4)
	picked := rng.Perm(len(constants.DiamondShapes))[:shapeCount]
	shapes := make([]string, 0, shapeCount)
	for _, idx := range picked {
		shapes = append(shapes, constants.DiamondShapes[idx])
	}

	minCarat := decimal.NewFromInt(int64(25 + rng.Intn(50))).Div(decimal.NewFromInt(100))
	return models.Setting{
		SKU:              fmt.Sprintf("ST-%05d", index),
		Name:             fmt.Sprintf("%s %s Setting", metal, style),
		Description:      fmt.Sprintf("A %s style setting crafted in %s.", strings.ToLower(style), metal),
		StyleType:        style,
		MetalType:        metal,
		BasePrice:        models.NewMoneyFromDecimal(decimal.NewFromInt(int64(600 + rng.Intn(3400)))),
		CompatibleShapes: strings.Join(shapes, ","),
		MinCarat:         decimal.NewNullDecimal(minCarat),
		MaxCarat:         decimal.NewNullDecimal(minCarat.Add(decimal.NewFromInt(int64(2 + rng.Intn(3))))),
		IsAvailable:      true,
		PopularityScore:  rng.Intn(100),
	}
}
