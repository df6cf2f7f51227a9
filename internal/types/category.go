package types

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	ID   int64   `json:"id"`
	Name *string `json:"name,omitempty"`
}
