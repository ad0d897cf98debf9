package service

import (
	"fmt"

	"github.com/luxe-next/internal/constants"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ReviewService 评价服务
type ReviewService struct {
	repo repository.ReviewRepository
	refs referenceChecker
}

// NewReviewService 创建评价服务
func NewReviewService(
	repo repository.ReviewRepository,
	users repository.UserRepository,
	diamonds repository.DiamondRepository,
	settings repository.SettingRepository,
	configs repository.ConfigurationRepository,
) *ReviewService {
	return &ReviewService{
		repo: repo,
		refs: referenceChecker{users: users, diamonds: diamonds, settings: settings, configs: configs},
	}
}

// ReviewInput 创建评价输入（新评价默认未审核）
type ReviewInput struct {
	UserID     *uint
	DiamondID  *uint
	SettingID  *uint
	ConfigID   *uint
	Rating     *int    `validate:"required,min=1,max=5"`
	Title      *string `validate:"omitempty,max=200"`
	ReviewText *string
}

// ReviewUpdateInput 更新评价输入，包含审核字段，不含 helpful_count
type ReviewUpdateInput struct {
	ReviewInput
	IsVerifiedPurchase *bool
	IsApproved         *bool
}

// ProductReviews 商品评价及聚合结果
type ProductReviews struct {
	Reviews       []models.Review
	AverageRating decimal.Decimal
	TotalReviews  int64
}

// List 已审核评价列表
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.repo.List(filter)
}

// GetByID 获取已审核评价
func (s *ReviewService) GetByID(id uint) (*models.Review, error) {
	review, err := s.repo.GetApprovedByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

// Create 创建评价
func (s *ReviewService) Create(input ReviewInput) (*models.Review, error) {
	if err := validateStruct(ErrInvalidReview, input); err != nil {
		return nil, err
	}
	if err := s.refs.check(references{
		UserID:    input.UserID,
		DiamondID: input.DiamondID,
		SettingID: input.SettingID,
		ConfigID:  input.ConfigID,
	}); err != nil {
		return nil, err
	}
	review := &models.Review{}
	applyReviewInput(review, input)
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	return s.reload(review.ID)
}

// Update 部分更新评价（包括审核），未审核的评价也可被修改
func (s *ReviewService) Update(id uint, input ReviewUpdateInput) (*models.Review, error) {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if input.Rating != nil && (*input.Rating < constants.ReviewRatingMin || *input.Rating > constants.ReviewRatingMax) {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidReview, constants.ReviewRatingMin, constants.ReviewRatingMax)
	}
	if input.Title != nil && len([]rune(*input.Title)) > 200 {
		return nil, fmt.Errorf("%w: title too long", ErrInvalidReview)
	}
	if err := s.refs.check(references{
		UserID:    input.UserID,
		DiamondID: input.DiamondID,
		SettingID: input.SettingID,
		ConfigID:  input.ConfigID,
	}); err != nil {
		return nil, err
	}
	applyReviewInput(review, input.ReviewInput)
	if input.IsVerifiedPurchase != nil {
		review.IsVerifiedPurchase = *input.IsVerifiedPurchase
	}
	if input.IsApproved != nil {
		review.IsApproved = *input.IsApproved
	}
	review.User = nil
	if err := s.repo.Update(review); err != nil {
		return nil, err
	}
	return s.reload(id)
}

// Delete 删除评价
func (s *ReviewService) Delete(id uint) error {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// MarkHelpful 有用数加一并返回新值
func (s *ReviewService) MarkHelpful(id uint) (int, error) {
	count, found, err := s.repo.IncrementHelpful(id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNotFound
	}
	return count, nil
}

// ProductReviews 按钻石和/或戒托汇总已审核评价
func (s *ReviewService) ProductReviews(filter repository.ProductReviewFilter) (*ProductReviews, error) {
	reviews, err := s.repo.ListProductReviews(filter)
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.ProductSummary(filter)
	if err != nil {
		return nil, err
	}
	return &ProductReviews{
		Reviews:       reviews,
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
	}, nil
}

func (s *ReviewService) reload(id uint) (*models.Review, error) {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

func applyReviewInput(review *models.Review, input ReviewInput) {
	if input.UserID != nil {
		review.UserID = input.UserID
	}
	if input.DiamondID != nil {
		review.DiamondID = input.DiamondID
	}
	if input.SettingID != nil {
		review.SettingID = input.SettingID
	}
	if input.ConfigID != nil {
		review.ConfigID = input.ConfigID
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if title := trimPtr(input.Title); title != nil {
		review.Title = *title
	}
	if input.ReviewText != nil {
		review.ReviewText = *input.ReviewText
	}
}

// ReviewerName 评价展示用的用户名
func ReviewerName(review *models.Review) string {
	if review == nil || review.User == nil {
		return constants.ReviewAnonymousName
	}
	if name := review.User.FullName(); name != "" {
		return name
	}
	return constants.ReviewAnonymousName
}
