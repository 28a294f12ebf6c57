package category

import "time"

type Category struct {
	CategoryID       int64      `json:"CategoryID"`
	CategoryName     string     `json:"CategoryName"`
	Description      string     `json:"Description"`
	ParentCategoryID *int64     `json:"ParentCategoryID,omitempty"`
	ImageURL         string     `json:"ImageURL"`
	IsActive         bool       `json:"IsActive"`
	CreatedAt        time.Time  `json:"CreatedAt"`
	SubCategories    []Category `json:"SubCategories,omitempty"`
}
