package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/models"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteRequest 创建/更新收藏请求
type FavoriteRequest struct {
	User      *uint   `json:"user"`
	Diamond   *uint   `json:"diamond"`
	Setting   *uint   `json:"setting"`
	Config    *uint   `json:"config"`
	UserNotes *string `json:"user_notes"`
}

func (r FavoriteRequest) toInput() service.FavoriteInput {
	return service.FavoriteInput{
		UserID:    r.User,
		DiamondID: r.Diamond,
		SettingID: r.Setting,
		ConfigID:  r.Config,
		UserNotes: r.UserNotes,
	}
}

func favoriteViews(favorites []models.Favorite) []favoriteView {
	items := make([]favoriteView, 0, len(favorites))
	for i := range favorites {
		items = append(items, newFavoriteView(&favorites[i]))
	}
	return items
}

// ListFavorites 收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.FavoriteListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   q.Uint("user"),
		Ordering: q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	favorites, total, err := h.FavoriteService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	respondPage(c, favoriteViews(favorites), page, pageSize, total)
}

// MyFavorites 指定用户的收藏
func (h *Handler) MyFavorites(c *gin.Context) {
	userID, ok := requiredUserID(c)
	if !ok {
		return
	}
	favorites, err := h.FavoriteService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, favoriteViews(favorites))
}

// GetFavorite 收藏详情
func (h *Handler) GetFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	favorite, err := h.FavoriteService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newFavoriteView(favorite))
}

// CreateFavorite 创建收藏
func (h *Handler) CreateFavorite(c *gin.Context) {
	var req FavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	favorite, err := h.FavoriteService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, favoriteErrorRules)
		return
	}
	response.Created(c, newFavoriteView(favorite))
}

// UpdateFavorite 更新收藏
func (h *Handler) UpdateFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req FavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	favorite, err := h.FavoriteService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, favoriteErrorRules)
		return
	}
	response.Success(c, newFavoriteView(favorite))
}

// DeleteFavorite 删除收藏
func (h *Handler) DeleteFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.FavoriteService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
