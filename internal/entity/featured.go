package entity

// FeaturedBook is the single highlighted catalog entry shown on the landing
// page. Exactly one row is expected to have IsActive set; the row is seeded
// once and only ever updated.
type FeaturedBook struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CoverImage     string   `json:"cover_image"`
	Price          float64  `json:"price"`
	Features       []string `json:"features"`
	WhatsappNumber string   `json:"whatsapp_number"`
	IsActive       bool     `json:"is_active"`
}
