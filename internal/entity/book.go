package entity

import "time"

type Book struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	CoverImage     string    `json:"cover_image"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	WhatsappNumber string    `json:"whatsapp_number"`
	DisplayOrder   int       `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
