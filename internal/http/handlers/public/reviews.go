package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewRequest 创建评价请求（helpful_count 不可写）
type ReviewRequest struct {
	User       *uint   `json:"user"`
	Diamond    *uint   `json:"diamond"`
	Setting    *uint   `json:"setting"`
	Config     *uint   `json:"config"`
	Rating     *int    `json:"rating"`
	Title      *string `json:"title"`
	ReviewText *string `json:"review_text"`
}

func (r ReviewRequest) toInput() service.ReviewInput {
	return service.ReviewInput{
		UserID:     r.User,
		DiamondID:  r.Diamond,
		SettingID:  r.Setting,
		ConfigID:   r.Config,
		Rating:     r.Rating,
		Title:      r.Title,
		ReviewText: r.ReviewText,
	}
}

// ReviewUpdateRequest 更新评价请求，可修改审核状态
type ReviewUpdateRequest struct {
	ReviewRequest
	IsVerifiedPurchase *bool `json:"is_verified_purchase"`
	IsApproved         *bool `json:"is_approved"`
}

// ListReviews 已审核评价列表
func (h *Handler) ListReviews(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.ReviewListFilter{
		Page:      page,
		PageSize:  pageSize,
		DiamondID: q.Uint("diamond"),
		SettingID: q.Uint("setting"),
		ConfigID:  q.Uint("config"),
		Rating:    q.Int("rating"),
		Ordering:  q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	reviews, total, err := h.ReviewService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	items := make([]reviewView, 0, len(reviews))
	for i := range reviews {
		items = append(items, newReviewView(&reviews[i]))
	}
	respondPage(c, items, page, pageSize, total)
}

// GetReview 已审核评价详情
func (h *Handler) GetReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	review, err := h.ReviewService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newReviewView(review))
}

// CreateReview 创建评价（待审核）
func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.ReviewService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, reviewErrorRules)
		return
	}
	response.Created(c, newReviewView(review))
}

// UpdateReview 更新评价
func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReviewUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.ReviewService.Update(id, service.ReviewUpdateInput{
		ReviewInput:        req.toInput(),
		IsVerifiedPurchase: req.IsVerifiedPurchase,
		IsApproved:         req.IsApproved,
	})
	if err != nil {
		respondServiceError(c, err, reviewErrorRules)
		return
	}
	response.Success(c, newReviewView(review))
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// MarkReviewHelpful 有用数加一
func (h *Handler) MarkReviewHelpful(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	count, err := h.ReviewService.MarkHelpful(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"helpful_count": count})
}

// ProductReviews 商品评价及平均分
func (h *Handler) ProductReviews(c *gin.Context) {
	q := handlershared.NewQueryParser(c)
	filter := repository.ProductReviewFilter{
		DiamondID: q.Uint("diamond_id"),
		SettingID: q.Uint("setting_id"),
	}
	if !queryOK(c, q) {
		return
	}
	result, err := h.ReviewService.ProductReviews(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, newProductReviewsView(result))
}
