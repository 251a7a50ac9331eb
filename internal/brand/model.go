package brand

import "time"

type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
