package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/repository"

	"github.com/gin-gonic/gin"
)

func parseDiamondFilter(q *handlershared.QueryParser) repository.DiamondListFilter {
	return repository.DiamondListFilter{
		Cut:      q.String("cut"),
		Color:    q.String("color"),
		Clarity:  q.String("clarity"),
		Shape:    q.String("shape"),
		Search:   q.String("search"),
		MinCarat: q.Decimal("min_carat"),
		MaxCarat: q.Decimal("max_carat"),
		MinPrice: q.Decimal("min_price"),
		MaxPrice: q.Decimal("max_price"),
		Ordering: q.String("ordering"),
	}
}

// ListDiamonds 在售钻石列表
func (h *Handler) ListDiamonds(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := parseDiamondFilter(q)
	if !queryOK(c, q) {
		return
	}
	filter.Page, filter.PageSize = page, pageSize

	diamonds, total, err := h.CatalogService.ListDiamonds(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	items := make([]*diamondListView, 0, len(diamonds))
	for i := range diamonds {
		items = append(items, newDiamondListView(&diamonds[i]))
	}
	respondPage(c, items, page, pageSize, total)
}

// GetDiamond 在售钻石详情
func (h *Handler) GetDiamond(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	diamond, err := h.CatalogService.GetDiamond(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newDiamondDetailView(diamond))
}

// DiamondStatistics 在售钻石统计（与列表相同的过滤条件）
func (h *Handler) DiamondStatistics(c *gin.Context) {
	q := handlershared.NewQueryParser(c)
	filter := parseDiamondFilter(q)
	if !queryOK(c, q) {
		return
	}
	stats, err := h.CatalogService.DiamondStatistics(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, newDiamondStatisticsView(stats))
}

// ListSettings 在售戒托列表
func (h *Handler) ListSettings(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.SettingListFilter{
		Page:            page,
		PageSize:        pageSize,
		StyleType:       q.String("style_type"),
		MetalType:       q.String("metal_type"),
		CompatibleShape: q.String("compatible_shape"),
		Search:          q.String("search"),
		MinPrice:        q.Decimal("min_price"),
		MaxPrice:        q.Decimal("max_price"),
		Ordering:        q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	settings, total, err := h.CatalogService.ListSettings(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	items := make([]*settingListView, 0, len(settings))
	for i := range settings {
		items = append(items, newSettingListView(&settings[i]))
	}
	respondPage(c, items, page, pageSize, total)
}

// GetSetting 在售戒托详情
func (h *Handler) GetSetting(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	setting, err := h.CatalogService.GetSetting(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newSettingDetailView(setting))
}
