package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfigurationRequest 创建/更新定制方案请求
type ConfigurationRequest struct {
	User         *uint         `json:"user"`
	Diamond      *uint         `json:"diamond"`
	Setting      *uint         `json:"setting"`
	RingSize     *string       `json:"ring_size"`
	ConfigName   *string       `json:"config_name"`
	TotalPrice   *models.Money `json:"total_price"`
	DiamondPrice *models.Money `json:"diamond_price"`
	SettingPrice *models.Money `json:"setting_price"`
	IsSaved      *bool         `json:"is_saved"`
	IsOrdered    *bool         `json:"is_ordered"`
}

func (r ConfigurationRequest) toInput() service.ConfigurationInput {
	return service.ConfigurationInput{
		UserID:       r.User,
		DiamondID:    r.Diamond,
		SettingID:    r.Setting,
		RingSize:     r.RingSize,
		ConfigName:   r.ConfigName,
		TotalPrice:   r.TotalPrice,
		DiamondPrice: r.DiamondPrice,
		SettingPrice: r.SettingPrice,
		IsSaved:      r.IsSaved,
		IsOrdered:    r.IsOrdered,
	}
}

func configurationListViews(configs []models.RingConfiguration) []*configurationListView {
	items := make([]*configurationListView, 0, len(configs))
	for i := range configs {
		items = append(items, newConfigurationListView(&configs[i]))
	}
	return items
}

// ListConfigurations 定制方案列表
func (h *Handler) ListConfigurations(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.ConfigurationListFilter{
		Page:      page,
		PageSize:  pageSize,
		UserID:    q.Uint("user"),
		IsSaved:   q.Bool("is_saved"),
		IsOrdered: q.Bool("is_ordered"),
		Ordering:  q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	configs, total, err := h.ConfigurationService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	respondPage(c, configurationListViews(configs), page, pageSize, total)
}

// MyConfigurations 指定用户的定制方案
func (h *Handler) MyConfigurations(c *gin.Context) {
	userID, ok := requiredUserID(c)
	if !ok {
		return
	}
	configs, err := h.ConfigurationService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, configurationListViews(configs))
}

// GetConfiguration 定制方案详情
func (h *Handler) GetConfiguration(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	config, err := h.ConfigurationService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newConfigurationDetailView(config))
}

// CreateConfiguration 创建定制方案
func (h *Handler) CreateConfiguration(c *gin.Context) {
	var req ConfigurationRequest
	if !bindJSON(c, &req) {
		return
	}
	config, err := h.ConfigurationService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, configurationErrorRules)
		return
	}
	response.Created(c, newConfigurationDetailView(config))
}

// UpdateConfiguration 更新定制方案
func (h *Handler) UpdateConfiguration(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ConfigurationRequest
	if !bindJSON(c, &req) {
		return
	}
	config, err := h.ConfigurationService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, configurationErrorRules)
		return
	}
	response.Success(c, newConfigurationDetailView(config))
}

// DeleteConfiguration 删除定制方案
func (h *Handler) DeleteConfiguration(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ConfigurationService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
