package domain

import "time"

// Article is one fetched headline. Its comments live in a separate store keyed by ID.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	Author      string    `json:"author,omitempty"`
	SourceName  string    `json:"source_name,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Comment is a visitor reaction attached to exactly one article.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
}
