package blog

import (
	"slices"
	"time"
)

type (
	Posts      []Post
	Categories []Category
)

func NewAdminPost(p Post) AdminPost {
	tags := make([]string, len(p.Tags))
	for i := range p.Tags {
		tags[i] = p.Tags[i].Name
	}

	var publishDate *string
	if p.PublishedAt != nil {
		d := p.PublishedAt.UTC().Format(time.DateOnly)
		publishDate = &d
	}

	return AdminPost{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Author:      p.Author.Name,
		Status:      p.Status,
		Category:    p.Category.Name,
		Tags:        tags,
		PublishDate: publishDate,
		Views:       p.Views,
		Comments:    p.CommentsCount,
	}
}

func (ll Posts) Admin() []AdminPost {
	out := make([]AdminPost, len(ll))
	for i := range ll {
		out[i] = NewAdminPost(ll[i])
	}
	return out
}

func (ll Posts) Published() Posts {
	return ll.Filter(func(p Post) bool { return p.Status == StatusPublished })
}

func (ll Posts) Filter(keep func(Post) bool) Posts {
	out := make(Posts, 0, len(ll))
	for i := range ll {
		if keep(ll[i]) {
			out = append(out, ll[i])
		}
	}
	return out
}

// SortByPublishedDesc sorts newest first. Posts without a publish date go
// last.
func (ll Posts) SortByPublishedDesc() {
	slices.SortStableFunc(ll, func(a, b Post) int {
		return publishedUnix(b) - publishedUnix(a)
	})
}

func (ll Posts) CountByCategorySlug() map[string]int {
	counts := make(map[string]int)
	for i := range ll {
		counts[ll[i].Category.Slug]++
	}
	return counts
}

func (ll Posts) MaxID() int {
	maxID := 0
	for i := range ll {
		maxID = max(maxID, ll[i].ID)
	}
	return maxID
}

func (ll Categories) MaxID() int {
	maxID := 0
	for i := range ll {
		maxID = max(maxID, ll[i].ID)
	}
	return maxID
}

func (ll Categories) Active() Categories {
	out := make(Categories, 0, len(ll))
	for i := range ll {
		if ll[i].IsActive {
			out = append(out, ll[i])
		}
	}
	return out
}

func publishedUnix(p Post) int {
	if p.PublishedAt == nil {
		return 0
	}
	return int(p.PublishedAt.Unix())
}

// ClonePost copies the slices and pointers of p so the copy can be mutated
// without touching the original.
func ClonePost(p Post) Post {
	out := p
	if p.Tags != nil {
		out.Tags = slices.Clone(p.Tags)
	}
	out.PublishedAt = cloneTime(p.PublishedAt)
	out.ScheduledAt = cloneTime(p.ScheduledAt)
	if p.Author.Avatar != nil {
		avatar := *p.Author.Avatar
		out.Author.Avatar = &avatar
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
