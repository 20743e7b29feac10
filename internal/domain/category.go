package domain

import (
	"strings"
	"time"
)

// Category represents a product category. The ID is a slug derived from the
// human-entered name at creation time and stays fixed for the category's
// lifetime.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryPatch carries a partial category update. Nil fields are left
// untouched by the merge.
type CategoryPatch struct {
	Name  *string
	Label *string
	Icon  *string
}

// Slugify normalizes a category name into its ID: lowercased, with runs of
// whitespace collapsed into single hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// DefaultCategories returns the category seed a fresh registry starts with.
func DefaultCategories(now time.Time) []*Category {
	seed := []struct {
		id, label, icon string
	}{
		{"sofa", "Sofas", "🛋️"},
		{"sectional", "Sectionals", "📐"},
		{"recliner", "Recliners", "💺"},
		{"loveseat", "Loveseats", "❤️"},
		{"sleeper", "Sleeper Sofas", "🛏️"},
		{"ottoman", "Ottomans", "🪑"},
		{"accent-chair", "Accent Chairs", "🪑"},
	}

	categories := make([]*Category, 0, len(seed))
	for _, s := range seed {
		categories = append(categories, &Category{
			ID:        s.id,
			Name:      s.id,
			Label:     s.label,
			Icon:      s.icon,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return categories
}
