package models

// InsightRequest is the body of the product analysis endpoint.
type InsightRequest struct {
	Product *Product `json:"product" validate:"required"`
}

// InsightResult is the structured promotional summary returned by the AI
// provider for a single product. Produced fresh per request, never persisted.
type InsightResult struct {
	Title          string   `json:"title"`
	Pitch          string   `json:"pitch"`
	Bullets        []string `json:"bullets"`
	Recommendation string   `json:"recommendation"`
	StockText      string   `json:"stock_text"`
	WhatsappText   string   `json:"whatsapp_text"`
}
