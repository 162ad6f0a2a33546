package models

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Image string `json:"image" validate:"required"`
}

// Pointer fields: absent fields are left untouched, present fields must
// satisfy the same constraints as on create.
type UpdateCategoryRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Image *string `json:"image,omitempty" validate:"omitempty,min=1"`
}
