package dto

import "time"

// MenuItemCreateRequest is bound from multipart form fields; the image file
// arrives as the "file" part and is handled separately.
type MenuItemCreateRequest struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description"`
	Category    string  `form:"category" validate:"required"`
	SpecialTag  string  `form:"special_tag"`
	Price       float64 `form:"price" validate:"gte=0,lte=1000"`
}

// MenuItemUpdateRequest mirrors the create shape; the image part is optional.
type MenuItemUpdateRequest struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description"`
	Category    string  `form:"category" validate:"required"`
	SpecialTag  string  `form:"special_tag"`
	Price       float64 `form:"price" validate:"gte=0,lte=1000"`
}

// MenuItemResponse is the serialized menu item.
type MenuItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	SpecialTag  string    `json:"special_tag"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
