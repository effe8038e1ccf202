package domain

import "time"

// Kebab is a menu item.
type Kebab struct {
	ID           string
	Name         string
	Ingredients  []string
	Price        float64
	IsVegetarian bool
	CreatedAt    time.Time
}
