// Package filter holds the pure search filters backing the two search boxes.
// Both filters are stable (input order preserved), case-insensitive substring
// matches. A blank query returns the input unchanged.
package filter

import (
	"strings"

	"github.com/curio-app/curio/internal/models"
)

// Collections keeps the collections whose name or description contains query.
func Collections(cols []models.Collection, query string) []models.Collection {
	if strings.TrimSpace(query) == "" {
		return cols
	}
	q := strings.ToLower(query)

	result := make([]models.Collection, 0, len(cols))
	for _, c := range cols {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			result = append(result, c)
		}
	}
	return result
}

// Items keeps the items whose name, description, or any tag contains query.
func Items(items []models.Item, query string) []models.Item {
	if strings.TrimSpace(query) == "" {
		return items
	}
	q := strings.ToLower(query)

	result := make([]models.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			anyTagContains(it.Tags, q) {
			result = append(result, it)
		}
	}
	return result
}

func anyTagContains(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
