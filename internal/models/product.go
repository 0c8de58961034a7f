package models

import "time"

// Product represents a catalog item. The image lives on an external asset
// host; ImageID is the opaque handle needed to delete it later.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(120)" validate:"required,max=120"`
	Description string    `json:"description" validate:"required"`
	ImageURL    string    `json:"imageUrl"`
	ImageID     string    `json:"imageId"`
	Categories  []string  `json:"categories" gorm:"serializer:json"`
	Size        []string  `json:"size" gorm:"serializer:json"`
	Color       []string  `json:"color" gorm:"serializer:json"`
	Price       float64   `json:"price" validate:"gte=0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasCategory reports whether the product's category set intersects the
// requested categories.
func (p *Product) HasCategory(categories []string) bool {
	for _, want := range categories {
		for _, have := range p.Categories {
			if have == want {
				return true
			}
		}
	}
	return false
}
