package public

import (
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/repository"
	"github.com/luxe-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRequest 创建/更新用户请求
type UserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	IsActive  *bool   `json:"is_active"`
}

func (r UserRequest) toInput() service.UserInput {
	return service.UserInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		IsActive:  r.IsActive,
	}
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	q := handlershared.NewQueryParser(c)
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   q.String("search"),
		IsActive: q.Bool("is_active"),
		Ordering: q.String("ordering"),
	}
	if !queryOK(c, q) {
		return
	}
	users, total, err := h.UserService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	items := make([]userView, 0, len(users))
	for i := range users {
		items = append(items, newUserView(&users[i]))
	}
	respondPage(c, items, page, pageSize, total)
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, newUserView(user))
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.UserService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, userErrorRules)
		return
	}
	response.Created(c, newUserView(user))
}

// UpdateUser 更新用户（PUT/PATCH 均为部分更新）
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.UserService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, userErrorRules)
		return
	}
	response.Success(c, newUserView(user))
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.UserService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
