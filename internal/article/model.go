package article

import "time"

// Article is an editorial entry: news, review or guide.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	CoverImage string    `json:"cover_image,omitempty"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`

	// PublishedAt is kept as an opaque display string supplied by editors.
	PublishedAt string    `json:"published_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
