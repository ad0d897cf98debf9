package service

import "errors"

var (
	ErrNotFound                  = errors.New("not found")
	ErrReferenceNotFound         = errors.New("referenced record not found")
	ErrInvalidUser               = errors.New("invalid user")
	ErrUserEmailExists           = errors.New("user email already exists")
	ErrInvalidConfiguration      = errors.New("invalid ring configuration")
	ErrInvalidFavorite           = errors.New("invalid favorite")
	ErrFavoriteTargetConflict    = errors.New("favorite must reference exactly one target")
	ErrInvalidReview             = errors.New("invalid review")
	ErrInvalidOrder              = errors.New("invalid order")
	ErrInvalidOrderItem          = errors.New("invalid order item")
	ErrOrderNumberExists         = errors.New("order number already exists")
	ErrOrderStatusInvalid        = errors.New("invalid order status")
	ErrInvalidInteraction        = errors.New("invalid interaction")
	ErrInteractionTargetConflict = errors.New("interaction references more than one target")
)
