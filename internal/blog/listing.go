package blog

import (
	"cmp"

	"github.com/daniilsolovey/blogcraft/internal/listing"
)

func publishDate(p AdminPost) string {
	if p.PublishDate == nil {
		return ""
	}
	return *p.PublishDate
}

func byPublishDate(a, b AdminPost) int {
	return cmp.Compare(publishDate(a), publishDate(b))
}

// AdminPostListing drives the admin posts table. The category filter
// matches the display name shown in the table. Posts without a publish date
// sort as the oldest.
var AdminPostListing = listing.Spec[AdminPost]{
	Search: func(p AdminPost) []string { return []string{p.Title, p.Author, p.Category} },
	Filters: map[string]func(AdminPost, string) bool{
		"status":   listing.Equal(func(p AdminPost) string { return string(p.Status) }),
		"category": listing.Equal(func(p AdminPost) string { return p.Category }),
	},
	Sorts: map[string]func(a, b AdminPost) int{
		"newest": listing.Desc(byPublishDate),
		"oldest": byPublishDate,
		"title":  func(a, b AdminPost) int { return listing.CompareText(a.Title, b.Title) },
		"views":  func(a, b AdminPost) int { return cmp.Compare(b.Views, a.Views) },
	},
	DefaultSort: listing.SortNewest,
}

func byCreatedAt(a, b Category) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

var CategoryListing = listing.Spec[Category]{
	Search: func(c Category) []string { return []string{c.Name, c.Description} },
	Filters: map[string]func(Category, string) bool{
		"status": func(c Category, v string) bool {
			return (v == "active" && c.IsActive) || (v == "inactive" && !c.IsActive)
		},
	},
	Sorts: map[string]func(a, b Category) int{
		"newest": listing.Desc(byCreatedAt),
		"oldest": byCreatedAt,
		"name":   func(a, b Category) int { return listing.CompareText(a.Name, b.Name) },
		"posts":  func(a, b Category) int { return cmp.Compare(b.PostsCount, a.PostsCount) },
	},
	DefaultSort: listing.SortNewest,
}
