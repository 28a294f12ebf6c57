package inventory

import "time"

type ChangeType string

const (
	ChangeIn  ChangeType = "In"
	ChangeOut ChangeType = "Out"
)

// Reference types tie a log entry back to the operation that caused it.
const (
	RefInitial    = "Initial"
	RefAdjustment = "Adjustment"
	RefOrder      = "Order"
)

type Entry struct {
	LogID         int64      `json:"LogID"`
	ProductID     int64      `json:"ProductID"`
	ChangeType    ChangeType `json:"ChangeType"`
	Quantity      int        `json:"Quantity"`
	OldStock      int        `json:"OldStock"`
	NewStock      int        `json:"NewStock"`
	Reason        string     `json:"Reason"`
	ReferenceType string     `json:"ReferenceType"`
	ReferenceID   *int64     `json:"ReferenceID,omitempty"`
	ChangedBy     int64      `json:"ChangedBy"`
	ChangedByName string     `json:"ChangedByName,omitempty"`
	ChangedAt     time.Time  `json:"ChangedAt"`
}

type Page struct {
	Logs       []Entry `json:"logs"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}
