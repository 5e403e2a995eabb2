package blog

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultTitle         = "Untitled Post"
	defaultFeaturedImage = "https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg"
	defaultCategorySlug  = "general"
)

var currentAuthor = Author{Name: "Current User", Bio: "Blog author"}

func (m *Manager) posts(ctx context.Context) (Posts, error) {
	list, err := m.store.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("store get posts: %w", err)
	}
	return list, nil
}

// AllPosts returns published posts in store order.
func (m *Manager) AllPosts(ctx context.Context) ([]Post, error) {
	list, err := m.posts(ctx)
	if err != nil {
		return nil, err
	}
	return list.Published(), nil
}

func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	list, err := m.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Slug == slug {
			return &list[i], nil
		}
	}
	return nil, nil
}

func (m *Manager) PostsByCategory(ctx context.Context, categorySlug string) ([]Post, error) {
	list, err := m.posts(ctx)
	if err != nil {
		return nil, err
	}
	return list.Filter(func(p Post) bool {
		return p.Status == StatusPublished && p.Category.Slug == categorySlug
	}), nil
}

// FeaturedPost is the first published post in store order.
func (m *Manager) FeaturedPost(ctx context.Context) (*Post, error) {
	list, err := m.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// RecentPosts returns up to limit published posts, newest first.
func (m *Manager) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	list, err := m.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	Posts(list).SortByPublishedDesc()
	return list[:min(limit, len(list))], nil
}

// RelatedPosts returns recent posts other than the one with the given slug.
func (m *Manager) RelatedPosts(ctx context.Context, slug string, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	list, err := m.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	others := Posts(list).Filter(func(p Post) bool { return p.Slug != slug })
	others.SortByPublishedDesc()
	return others[:min(limit, len(others))], nil
}

func (m *Manager) AdminPosts(ctx context.Context) ([]AdminPost, error) {
	list, err := m.posts(ctx)
	if err != nil {
		return nil, err
	}
	return list.Admin(), nil
}

func (m *Manager) AdminPostByID(ctx context.Context, id int) (*Post, error) {
	post, err := m.store.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get post by id: %w", err)
	}
	return post, nil
}

// CreatePost fills every missing field with a default and puts the post at
// the front of the list.
func (m *Manager) CreatePost(ctx context.Context, in PostInput) (*AdminPost, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}
	in, err := renderInput(in)
	if err != nil {
		return nil, err
	}

	now := m.now()
	post, err := m.store.InsertPost(ctx, PlaceFront, func(id int) Post {
		return newPost(id, in, now)
	})
	if err != nil {
		return nil, fmt.Errorf("store insert post: %w", err)
	}

	m.log.Info("post created", "id", post.ID, "slug", post.Slug, "status", post.Status)
	admin := NewAdminPost(*post)
	return &admin, nil
}

// PreviewPost builds the post CreatePost would store, without storing it.
func (m *Manager) PreviewPost(ctx context.Context, in PostInput) (*Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}
	in, err := renderInput(in)
	if err != nil {
		return nil, err
	}
	post := newPost(0, in, m.now())
	return &post, nil
}

// UpdatePost merges the present fields of in onto the post. It returns nil
// when the id is unknown.
func (m *Manager) UpdatePost(ctx context.Context, id int, in PostInput) (*AdminPost, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}
	in, err := renderInput(in)
	if err != nil {
		return nil, err
	}

	now := m.now()
	post, err := m.store.ModifyPost(ctx, id, func(p *Post) {
		mergePost(p, in, now)
	})
	if err != nil {
		return nil, fmt.Errorf("store update post: %w", err)
	} else if post == nil {
		return nil, nil
	}

	m.log.Info("post updated", "id", id, "status", post.Status)
	admin := NewAdminPost(*post)
	return &admin, nil
}

func (m *Manager) DeletePost(ctx context.Context, id int) (bool, error) {
	ok, err := m.store.DeletePost(ctx, id)
	if err != nil {
		return false, fmt.Errorf("store delete post: %w", err)
	}
	if ok {
		m.log.Info("post deleted", "id", id)
	}
	return ok, nil
}

func (m *Manager) ArchivePost(ctx context.Context, id int) (*AdminPost, error) {
	return m.setStatus(ctx, id, StatusArchived)
}

func (m *Manager) setStatus(ctx context.Context, id int, status Status) (*AdminPost, error) {
	now := m.now()
	post, err := m.store.ModifyPost(ctx, id, func(p *Post) {
		applyStatus(p, status, now)
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("store set post status: %w", err)
	} else if post == nil {
		return nil, nil
	}

	m.log.Info("post status changed", "id", id, "status", status)
	admin := NewAdminPost(*post)
	return &admin, nil
}

// DuplicatePost copies a post as a fresh draft and appends it to the end of
// the list.
func (m *Manager) DuplicatePost(ctx context.Context, id int) (*AdminPost, error) {
	src, err := m.store.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get post by id: %w", err)
	} else if src == nil {
		return nil, nil
	}

	now := m.now()
	post, err := m.store.InsertPost(ctx, PlaceBack, func(newID int) Post {
		dup := ClonePost(*src)
		dup.ID = newID
		dup.Title = src.Title + " (Copy)"
		dup.Slug = fmt.Sprintf("%s-copy-%d", src.Slug, newID)
		dup.ScheduledAt = nil
		applyStatus(&dup, StatusDraft, now)
		dup.Views = 0
		dup.CommentsCount = 0
		dup.UpdatedAt = now
		return dup
	})
	if err != nil {
		return nil, fmt.Errorf("store insert post: %w", err)
	}

	m.log.Info("post duplicated", "sourceID", id, "id", post.ID)
	admin := NewAdminPost(*post)
	return &admin, nil
}

// SchedulePost marks a post as scheduled for at, or for tomorrow at 10:00
// local time when at is nil.
func (m *Manager) SchedulePost(ctx context.Context, id int, at *time.Time) (*AdminPost, error) {
	now := m.now()
	if at != nil && at.Before(now) {
		return nil, fmt.Errorf("%w: schedule time %s is in the past", ErrValidation, at.Format(time.RFC3339))
	}

	when := tomorrowAt(now)
	if at != nil {
		when = *at
	}

	post, err := m.store.ModifyPost(ctx, id, func(p *Post) {
		p.ScheduledAt = &when
		applyStatus(p, StatusScheduled, now)
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("store schedule post: %w", err)
	} else if post == nil {
		return nil, nil
	}

	m.log.Info("post scheduled", "id", id, "scheduledAt", when)
	admin := NewAdminPost(*post)
	return &admin, nil
}

// BulkUpdatePosts applies action to every id in turn. Unknown ids are
// reported, not treated as errors.
func (m *Manager) BulkUpdatePosts(ctx context.Context, ids []int, action PostAction) (*BulkResult, error) {
	var apply func(id int) (bool, error)
	switch action {
	case PostActionDelete:
		apply = func(id int) (bool, error) { return m.DeletePost(ctx, id) }
	case PostActionPublish, PostActionDraft, PostActionArchive:
		status := map[PostAction]Status{
			PostActionPublish: StatusPublished,
			PostActionDraft:   StatusDraft,
			PostActionArchive: StatusArchived,
		}[action]
		apply = func(id int) (bool, error) {
			post, err := m.setStatus(ctx, id, status)
			return post != nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown post action %q", ErrValidation, action)
	}

	return bulk(ids, apply)
}

func bulk(ids []int, apply func(id int) (bool, error)) (*BulkResult, error) {
	res := &BulkResult{Affected: []int{}, Missing: []int{}}
	for _, id := range ids {
		ok, err := apply(id)
		if err != nil {
			return res, err
		}
		if ok {
			res.Affected = append(res.Affected, id)
		} else {
			res.Missing = append(res.Missing, id)
		}
	}
	return res, nil
}

func validatePostInput(in PostInput) error {
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown post status %q", ErrValidation, *in.Status)
	}
	if in.Slug != nil && *in.Slug != "" && GenerateSlug(*in.Slug) != *in.Slug {
		return fmt.Errorf("%w: slug %q is not url-safe", ErrValidation, *in.Slug)
	}
	return nil
}

// renderInput turns Markdown content into HTML when no HTML was given.
func renderInput(in PostInput) (PostInput, error) {
	if in.ContentMarkdown == nil || *in.ContentMarkdown == "" || value(in.Content, "") != "" {
		return in, nil
	}
	html, err := RenderMarkdown(*in.ContentMarkdown)
	if err != nil {
		return in, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	in.Content = &html
	return in, nil
}

func newPost(id int, in PostInput, now time.Time) Post {
	title := value(in.Title, defaultTitle)

	slug := value(in.Slug, "")
	if slug == "" && value(in.Title, "") != "" {
		slug = GenerateSlug(title)
	}
	if slug == "" {
		slug = fmt.Sprintf("untitled-post-%d", id)
	}

	excerpt := value(in.Excerpt, "Brief excerpt for "+title)
	categorySlug := value(in.Category, defaultCategorySlug)

	post := Post{
		ID:               id,
		Title:            title,
		Slug:             slug,
		Excerpt:          excerpt,
		Content:          value(in.Content, fmt.Sprintf("<h2>Welcome to %s</h2><p>This is the main content of the post...</p>", title)),
		FeaturedImageURL: value(in.FeaturedImage, defaultFeaturedImage),
		Author:           currentAuthor,
		Category:         CategoryRef{Name: FormatCategoryName(categorySlug), Slug: categorySlug},
		Tags:             NewTags(in.Tags),
		ScheduledAt:      in.ScheduledAt,
		UpdatedAt:        now,
		ReadingTime:      ReadingTime(value(in.Content, "")),
		MetaTitle:        value(in.MetaTitle, title),
		MetaDescription:  value(in.MetaDescription, value(in.Excerpt, "Learn about "+value(in.Title, "this topic"))),
	}

	status := StatusDraft
	if in.Status != nil {
		status = *in.Status
	}
	applyStatus(&post, status, now)

	return post
}

func mergePost(p *Post, in PostInput, now time.Time) {
	p.Title = value(in.Title, p.Title)
	p.Slug = value(in.Slug, p.Slug)
	p.Excerpt = value(in.Excerpt, p.Excerpt)
	p.Content = value(in.Content, p.Content)
	p.FeaturedImageURL = value(in.FeaturedImage, p.FeaturedImageURL)
	if slug := value(in.Category, ""); slug != "" {
		p.Category = CategoryRef{Name: FormatCategoryName(slug), Slug: slug}
	}
	if in.Tags != nil {
		p.Tags = NewTags(in.Tags)
	}
	if in.ScheduledAt != nil {
		p.ScheduledAt = in.ScheduledAt
	}
	p.MetaTitle = value(in.MetaTitle, p.MetaTitle)
	p.MetaDescription = value(in.MetaDescription, p.MetaDescription)
	p.ReadingTime = ReadingTime(p.Content)
	p.UpdatedAt = now

	status := p.Status
	if in.Status != nil {
		status = *in.Status
	}
	applyStatus(p, status, now)
}
