package models

// Category mirrors the category service payload.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
	ParentID     *int64 `json:"parentId,omitempty"`
	Level        int    `json:"level"`
	ProductCount int64  `json:"productCount"`
}

// CategoryTree is a category with its resolved children.
type CategoryTree struct {
	Category *Category       `json:"category"`
	Children []*CategoryTree `json:"children,omitempty"`
}
