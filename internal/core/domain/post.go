package domain

import "time"

// Post is a blog entry. TagIDs holds the membership set of the post↔tag
// association; it is mutated only through the tag reconciler so that
// concurrent readers never observe a partially applied edit.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URLSlug     string    `json:"url_slug"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	IsPublic    bool      `json:"is_public"`
	AuthorID    string    `json:"author_id"`
	TagIDs      []string  `json:"tag_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasTag reports whether the post is currently linked to the given tag.
func (p *Post) HasTag(tagID string) bool {
	for _, id := range p.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}
