package api

import (
	"time"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
)

// HorseResponse represents a horse in API responses.
type HorseResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Level         string        `json:"level,omitempty"`
	Age           int           `json:"age"`
	Gender        string        `json:"gender,omitempty"`
	Breed         string        `json:"breed,omitempty"`
	Country       string        `json:"country,omitempty"`
	Height        string        `json:"height,omitempty"`
	Coat          string        `json:"coat,omitempty"`
	Price         catalog.Price `json:"price" swaggertype:"string" example:"45000"` // number, "ask" or "private"
	Elite         bool          `json:"elite"`
	Description   string        `json:"description,omitempty"`
	Lineage       string        `json:"lineage,omitempty"`
	Image         string        `json:"image,omitempty"`
	Gallery       []string      `json:"gallery,omitempty"`
	Video         string        `json:"video,omitempty"`
	VideoVertical string        `json:"video_vertical,omitempty"`
	Features      []string      `json:"features,omitempty"`
	Link          string        `json:"link"` // HTML detail page
}

// HorseListResponse wraps a filtered list of horses.
type HorseListResponse struct {
	Data     []HorseResponse `json:"data"`
	Total    int             `json:"total"`
	Category string          `json:"category"`
	Level    string          `json:"level"`
}

// LevelResponse is a level with its number of horses.
type LevelResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CategoryResponse is a category with its levels.
type CategoryResponse struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Levels []LevelResponse `json:"levels"`
}

// LeadRequest is the JSON body of a sell-your-horse request.
type LeadRequest struct {
	FullName       string `json:"full_name" example:"Lucía Ortega"`
	Phone          string `json:"phone" example:"+34 600 000 000"`
	Location       string `json:"location,omitempty" example:"Jerez de la Frontera"`
	HorseName      string `json:"horse_name" example:"Bravío"`
	HorseAge       string `json:"horse_age,omitempty" example:"7"`
	Discipline     string `json:"discipline" enums:"dressage,showjumping,other"`
	EstimatedPrice string `json:"estimated_price,omitempty" example:"50.000"`
	VideoURL       string `json:"video_url,omitempty"`
	Description    string `json:"description,omitempty"`
	AcceptedPolicy bool   `json:"accepted_policy"`
}

// LeadResponse acknowledges an accepted lead.
type LeadResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ValidationErrorResponse lists the rejected fields of a request.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields"`
}
