package models

// ProductAttributes is an open-ended attribute bag. Well-known keys (material,
// height_cm, manufacturer, limited_edition, series, character, ...) coexist
// with arbitrary extension keys.
type ProductAttributes map[string]interface{}

// LimitedEdition reports whether the limited_edition flag is set and true.
func (a ProductAttributes) LimitedEdition() bool {
	v, ok := a["limited_edition"].(bool)
	return ok && v
}

// Product represents a single catalog entry. The catalog is static reference
// data in this service: products are created once at seed time and never
// modified afterwards.
type Product struct {
	ID               string            `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Title            string            `json:"title" validate:"required,max=200"`
	Subtitle         string            `json:"subtitle,omitempty"`
	DescriptionShort string            `json:"description_short"`
	DescriptionLong  string            `json:"description_long,omitempty"`
	Categories       []string          `json:"categories" gorm:"serializer:json"`
	Tags             []string          `json:"tags" gorm:"serializer:json"`
	Images           []string          `json:"images" gorm:"serializer:json"`
	PriceSuggested   float64           `json:"price_suggested" validate:"gte=0"`
	Currency         string            `json:"currency"`
	Stock            int               `json:"stock" validate:"gte=0"`
	Attributes       ProductAttributes `json:"attributes,omitempty" gorm:"serializer:json"`

	// Position preserves catalog insertion order, which doubles as the
	// "newest" sort. Assigned by the repository at seed time.
	Position int `json:"-" gorm:"index"`
}

// HasCategory reports whether the product carries the given category id.
// Matching is exact and case-sensitive.
func (p *Product) HasCategory(categoryID string) bool {
	for _, c := range p.Categories {
		if c == categoryID {
			return true
		}
	}
	return false
}

// Category is static reference data describing one catalog section.
type Category struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	ProductCount int    `json:"product_count,omitempty" gorm:"-"`

	Position int `json:"-" gorm:"index"`
}

// CategoryAll is the sentinel category id meaning "no category filter".
const CategoryAll = "all"
