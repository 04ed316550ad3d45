package models

// StoreSocial holds the store's social media handles.
type StoreSocial struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// StoreContact holds the store's contact channels.
type StoreContact struct {
	Whatsapp string       `json:"whatsapp"`
	Email    string       `json:"email"`
	Social   *StoreSocial `json:"social,omitempty"`
}

// StoreInfo describes the storefront itself.
type StoreInfo struct {
	Name          string       `json:"name"`
	Tagline       string       `json:"tagline"`
	Description   string       `json:"description"`
	Contact       StoreContact `json:"contact"`
	BusinessHours string       `json:"business_hours,omitempty"`
	Location      string       `json:"location,omitempty"`
}

// NewsArticle is a single news entry shown on the storefront.
type NewsArticle struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category"`
}
