package models

import "strings"

// Item is a tagged record belonging to exactly one collection.
// CollectionID is set at creation and never changes afterwards.
// Timestamps are ISO-8601 UTC strings.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	CollectionID string   `json:"collection_id"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// ParseTags splits a comma-separated tag string into a tag list. Each
// segment is trimmed; empty segments are dropped. Order and duplicates
// are preserved, case is kept as typed.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
