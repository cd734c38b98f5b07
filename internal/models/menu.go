package models

import "time"

type MenuItem struct {
	ID          int        `json:"id" db:"item_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       int        `json:"price" db:"price"` // prix en unités entières
	ImageURL    string     `json:"image_url" db:"image_url"`
	Category    string     `json:"category" db:"category"`
	Popular     bool       `json:"popular" db:"popular"`
	New         bool       `json:"new" db:"new"`
	ChefSpecial bool       `json:"chefSpecial" db:"chef_special"`
	Vegan       bool       `json:"vegan" db:"vegan"`
	CreatedAt   *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Les 5 catégories du menu (ensemble fermé)
const (
	CategoryCoffee    = "coffee"
	CategoryTea       = "tea"
	CategorySnacks    = "snacks"
	CategoryDesserts  = "desserts"
	CategoryBeverages = "beverages"
)

var MenuCategories = []string{
	CategoryCoffee,
	CategoryTea,
	CategorySnacks,
	CategoryDesserts,
	CategoryBeverages,
}

// IsValidCategory vérifie qu'une catégorie fait partie de l'ensemble fermé
func IsValidCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}
