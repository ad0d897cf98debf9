package public

import (
	"encoding/json"

	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// InteractionRequest 记录用户行为请求
type InteractionRequest struct {
	User            *uint           `json:"user"`
	SessionID       *string         `json:"session_id"`
	InteractionType *string         `json:"interaction_type"`
	Diamond         *uint           `json:"diamond"`
	Setting         *uint           `json:"setting"`
	Config          *uint           `json:"config"`
	InteractionData json.RawMessage `json:"interaction_data"`
	PageURL         *string         `json:"page_url"`
	DeviceType      *string         `json:"device_type"`
	Browser         *string         `json:"browser"`
}

func (r InteractionRequest) toInput() service.InteractionInput {
	data := r.InteractionData
	if string(data) == "null" {
		data = nil
	}
	return service.InteractionInput{
		UserID:          r.User,
		SessionID:       r.SessionID,
		InteractionType: r.InteractionType,
		DiamondID:       r.Diamond,
		SettingID:       r.Setting,
		ConfigID:        r.Config,
		InteractionData: data,
		PageURL:         r.PageURL,
		DeviceType:      r.DeviceType,
		Browser:         r.Browser,
	}
}

// ListInteractions 用户行为列表
func (h *Handler) ListInteractions(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.InteractionListFilter{
		Page:            page,
		PageSize:        pageSize,
		UserID:          q.Uint("user"),
		InteractionType: q.String("interaction_type"),
		DeviceType:      q.String("device_type"),
		CreatedFrom:     q.TimeFrom("start_date"),
		CreatedTo:       q.TimeTo("end_date"),
		Ordering:        q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	interactions, total, err := h.InteractionService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	items := make([]interactionView, 0, len(interactions))
	for i := range interactions {
		items = append(items, newInteractionView(&interactions[i]))
	}
	respondPage(c, items, page, pageSize, total)
}

// GetInteraction 用户行为详情
func (h *Handler) GetInteraction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	interaction, err := h.InteractionService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newInteractionView(interaction))
}

// CreateInteraction 记录用户行为
func (h *Handler) CreateInteraction(c *gin.Context) {
	var req InteractionRequest
	if !bindJSON(c, &req) {
		return
	}
	interaction, err := h.InteractionService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, interactionErrorRules)
		return
	}
	response.Created(c, newInteractionView(interaction))
}

// UpdateInteraction 更新用户行为
func (h *Handler) UpdateInteraction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req InteractionRequest
	if !bindJSON(c, &req) {
		return
	}
	interaction, err := h.InteractionService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, interactionErrorRules)
		return
	}
	response.Success(c, newInteractionView(interaction))
}

// DeleteInteraction 删除用户行为
func (h *Handler) DeleteInteraction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.InteractionService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// AnalyticsSummary 用户行为汇总
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	q := handlershared.NewQueryParser(c)
	from := q.TimeFrom("start_date")
	to := q.TimeTo("end_date")
	if !queryOK(c, q) {
		return
	}
	summary, err := h.InteractionService.Summary(from, to)
	if err != nil {
		respondServiceError(c, err, interactionErrorRules)
		return
	}
	response.Success(c, newAnalyticsSummaryView(summary))
}
