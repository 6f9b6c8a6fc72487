package models

import (
	"time"
)

// Product is a catalog item. CategoryID is always present (the reference);
// Category is populated only when the caller preloads it (the expanded
// record), so readers decide explicitly which form they want.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
