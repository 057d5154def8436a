package domain

import "time"

// MenuItem is the aggregate for dishes offered on the menu.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Category    string
	SpecialTag  string
	Price       float64
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
