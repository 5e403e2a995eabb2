package blog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func newTestManager() *blog.Manager {
	return blog.NewManager(memstore.NewSeeded(), noOpLogger(), blog.WithClock(func() time.Time { return testNow }))
}

func ptr[T any](v T) *T {
	return &v
}

func postIDs(posts []blog.Post) []int {
	ids := make([]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	return ids
}

func TestManager_PublicReads(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()

	t.Run("AllPosts", func(t *testing.T) {
		posts, err := m.AllPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 4, 6}, postIDs(posts))
	})

	t.Run("PostBySlug", func(t *testing.T) {
		p, err := m.PostBySlug(ctx, "new-signing-youssef-amrani")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 2, p.ID)

		draft, err := m.PostBySlug(ctx, "advanced-typescript-techniques")
		require.NoError(t, err)
		assert.Nil(t, draft)
	})

	t.Run("PostsByCategory", func(t *testing.T) {
		posts, err := m.PostsByCategory(ctx, "transfers")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 6}, postIDs(posts))

		posts, err = m.PostsByCategory(ctx, "design")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("FeaturedPost", func(t *testing.T) {
		p, err := m.FeaturedPost(ctx)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 1, p.ID)
	})

	t.Run("RecentPosts", func(t *testing.T) {
		posts, err := m.RecentPosts(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{6, 1, 2, 4}, postIDs(posts))

		posts, err = m.RecentPosts(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{6, 1}, postIDs(posts))
	})

	t.Run("RelatedPosts", func(t *testing.T) {
		posts, err := m.RelatedPosts(ctx, "agareb", 0)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, postIDs(posts))
	})

	t.Run("PublicCategories", func(t *testing.T) {
		cats, err := m.PublicCategories(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 6)

		counts := make(map[string]int)
		for _, c := range cats {
			counts[c.Slug] = c.PublishedCount
		}
		assert.Equal(t, 2, counts["transfers"])
		assert.Equal(t, 0, counts["design"])
	})
}

func TestManager_FeaturedPost_Empty(t *testing.T) {
	m := blog.NewManager(memstore.New(nil, nil), noOpLogger())

	p, err := m.FeaturedPost(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestManager_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.CreatePost(ctx, blog.PostInput{})
		require.NoError(t, err)
		assert.Equal(t, 7, admin.ID)
		assert.Equal(t, "Untitled Post", admin.Title)
		assert.Equal(t, "untitled-post-7", admin.Slug)
		assert.Equal(t, blog.StatusDraft, admin.Status)
		assert.Equal(t, "Current User", admin.Author)
		assert.Equal(t, "General", admin.Category)
		assert.Nil(t, admin.PublishDate)
		assert.Empty(t, admin.Tags)

		p, err := m.AdminPostByID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Brief excerpt for Untitled Post", p.Excerpt)
		assert.Equal(t, "<h2>Welcome to Untitled Post</h2><p>This is the main content of the post...</p>", p.Content)
		assert.Equal(t, "general", p.Category.Slug)
		assert.Equal(t, 1, p.ReadingTime)
		assert.Equal(t, "Untitled Post", p.MetaTitle)
		assert.Equal(t, "Learn about this topic", p.MetaDescription)
		assert.Equal(t, testNow, p.UpdatedAt)

		list, err := m.AdminPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, list[0].ID, "new posts go first")
	})

	t.Run("published with title", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.CreatePost(ctx, blog.PostInput{
			Title:    ptr("Hello World"),
			Category: ptr("match-reports"),
			Tags:     []string{"Big Match"},
			Status:   ptr(blog.StatusPublished),
		})
		require.NoError(t, err)
		assert.Equal(t, "hello-world", admin.Slug)
		assert.Equal(t, "Match Reports", admin.Category)
		assert.Equal(t, []string{"Big Match"}, admin.Tags)
		require.NotNil(t, admin.PublishDate)
		assert.Equal(t, "2025-09-01", *admin.PublishDate)

		featured, err := m.FeaturedPost(ctx)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, featured.ID)
		assert.Equal(t, "big-match", featured.Tags[0].Slug)
	})

	t.Run("markdown content", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.CreatePost(ctx, blog.PostInput{ContentMarkdown: ptr("## Intro\n\nBody text")})
		require.NoError(t, err)

		p, err := m.AdminPostByID(ctx, admin.ID)
		require.NoError(t, err)
		assert.Contains(t, p.Content, "<h2>Intro</h2>")
	})

	t.Run("scheduled without time", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.CreatePost(ctx, blog.PostInput{Status: ptr(blog.StatusScheduled)})
		require.NoError(t, err)

		p, err := m.AdminPostByID(ctx, admin.ID)
		require.NoError(t, err)
		require.NotNil(t, p.ScheduledAt)
		assert.Equal(t, time.Date(2025, time.September, 2, 10, 0, 0, 0, time.UTC), *p.ScheduledAt)
		assert.Nil(t, p.PublishedAt)
	})

	t.Run("validation", func(t *testing.T) {
		m := newTestManager()

		_, err := m.CreatePost(ctx, blog.PostInput{Status: ptr(blog.Status("live"))})
		assert.ErrorIs(t, err, blog.ErrValidation)

		_, err = m.CreatePost(ctx, blog.PostInput{Slug: ptr("Not A Slug")})
		assert.ErrorIs(t, err, blog.ErrValidation)
	})
}

func TestManager_PreviewPost(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()

	p, err := m.PreviewPost(ctx, blog.PostInput{Title: ptr("Draft idea"), Status: ptr(blog.StatusPublished)})
	require.NoError(t, err)
	assert.Equal(t, "draft-idea", p.Slug)
	assert.Equal(t, &testNow, p.PublishedAt)

	list, err := m.AdminPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 6, "preview must not store")
}

func TestManager_UpdatePost(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		id              int
		in              blog.PostInput
		wantStatus      blog.Status
		wantPublishDate *string
		wantTags        []string
	}{
		{
			name:            "publish a draft",
			id:              3,
			in:              blog.PostInput{Status: ptr(blog.StatusPublished)},
			wantStatus:      blog.StatusPublished,
			wantPublishDate: ptr("2025-09-01"),
			wantTags:        []string{"TypeScript", "JavaScript", "Programming"},
		},
		{
			name:            "republish keeps the original date",
			id:              1,
			in:              blog.PostInput{Status: ptr(blog.StatusPublished), Title: ptr("Renamed")},
			wantStatus:      blog.StatusPublished,
			wantPublishDate: ptr("2024-01-15"),
			wantTags:        []string{"Championship", "Victory", "Wydad", "Final"},
		},
		{
			name:       "unpublish",
			id:         2,
			in:         blog.PostInput{Status: ptr(blog.StatusDraft)},
			wantStatus: blog.StatusDraft,
			wantTags:   []string{"Transfer", "New Player", "Midfielder"},
		},
		{
			name:       "archive through update",
			id:         4,
			in:         blog.PostInput{Status: ptr(blog.StatusArchived)},
			wantStatus: blog.StatusArchived,
			wantTags:   []string{"Web Development", "Modern", "Apps"},
		},
		{
			name:            "clear tags",
			id:              1,
			in:              blog.PostInput{Tags: []string{}},
			wantStatus:      blog.StatusPublished,
			wantPublishDate: ptr("2024-01-15"),
			wantTags:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()

			admin, err := m.UpdatePost(ctx, tt.id, tt.in)
			require.NoError(t, err)
			require.NotNil(t, admin)
			assert.Equal(t, tt.wantStatus, admin.Status)
			assert.Equal(t, tt.wantPublishDate, admin.PublishDate)
			assert.Equal(t, tt.wantTags, admin.Tags)
		})
	}

	t.Run("content recomputes reading time", func(t *testing.T) {
		m := newTestManager()

		_, err := m.UpdatePost(ctx, 1, blog.PostInput{Content: ptr("<p>short</p>")})
		require.NoError(t, err)

		p, err := m.AdminPostByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.ReadingTime)
		assert.Equal(t, testNow, p.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.UpdatePost(ctx, 404, blog.PostInput{Title: ptr("x")})
		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}

func TestManager_PostLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("archive", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.ArchivePost(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, blog.StatusArchived, admin.Status)
		assert.Nil(t, admin.PublishDate)

		p, err := m.PostBySlug(ctx, "asa-wins-championship-final-wydad")
		require.NoError(t, err)
		assert.Nil(t, p)

		missing, err := m.ArchivePost(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.DuplicatePost(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, admin.ID)
		assert.Equal(t, "ASA Wins Championship Final Against Wydad Casablanca (Copy)", admin.Title)
		assert.Equal(t, "asa-wins-championship-final-wydad-copy-7", admin.Slug)
		assert.Equal(t, blog.StatusDraft, admin.Status)
		assert.Nil(t, admin.PublishDate)
		assert.Zero(t, admin.Views)
		assert.Zero(t, admin.Comments)

		list, err := m.AdminPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, list[len(list)-1].ID, "duplicates go last")

		missing, err := m.DuplicatePost(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("schedule default time", func(t *testing.T) {
		m := newTestManager()

		admin, err := m.SchedulePost(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, blog.StatusScheduled, admin.Status)
		assert.Nil(t, admin.PublishDate)

		p, err := m.AdminPostByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.September, 2, 10, 0, 0, 0, time.UTC), *p.ScheduledAt)
	})

	t.Run("schedule explicit time", func(t *testing.T) {
		m := newTestManager()
		at := testNow.Add(72 * time.Hour)

		_, err := m.SchedulePost(ctx, 3, &at)
		require.NoError(t, err)

		p, err := m.AdminPostByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, at, *p.ScheduledAt)
	})

	t.Run("schedule in the past", func(t *testing.T) {
		m := newTestManager()
		at := testNow.Add(-time.Hour)

		_, err := m.SchedulePost(ctx, 3, &at)
		assert.ErrorIs(t, err, blog.ErrValidation)
	})

	t.Run("delete", func(t *testing.T) {
		m := newTestManager()

		ok, err := m.DeletePost(ctx, 6)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = m.DeletePost(ctx, 6)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestManager_BulkUpdatePosts(t *testing.T) {
	ctx := context.Background()

	t.Run("publish", func(t *testing.T) {
		m := newTestManager()

		res, err := m.BulkUpdatePosts(ctx, []int{3, 404}, blog.PostActionPublish)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, res.Affected)
		assert.Equal(t, []int{404}, res.Missing)

		p, err := m.PostBySlug(ctx, "advanced-typescript-techniques")
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("delete", func(t *testing.T) {
		m := newTestManager()

		res, err := m.BulkUpdatePosts(ctx, []int{1, 2}, blog.PostActionDelete)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, res.Affected)

		list, err := m.AdminPosts(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 4)
	})

	t.Run("unknown action", func(t *testing.T) {
		m := newTestManager()

		_, err := m.BulkUpdatePosts(ctx, []int{1}, blog.PostAction("explode"))
		assert.ErrorIs(t, err, blog.ErrValidation)
	})
}

func TestManager_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("reads", func(t *testing.T) {
		m := newTestManager()

		all, err := m.AllCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 6)

		c, err := m.CategoryBySlug(ctx, "design")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, 6, c.ID)

		c, err = m.CategoryByID(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("create", func(t *testing.T) {
		m := newTestManager()

		c, err := m.CreateCategory(ctx, blog.CategoryInput{Name: ptr("Youth Academy")})
		require.NoError(t, err)
		assert.Equal(t, 7, c.ID)
		assert.Equal(t, "youth-academy", c.Slug)
		assert.Equal(t, "#2563eb", c.Color)
		assert.True(t, c.IsActive)
		assert.Zero(t, c.PostsCount)
		assert.Equal(t, testNow, c.CreatedAt)
	})

	t.Run("create validation", func(t *testing.T) {
		m := newTestManager()

		_, err := m.CreateCategory(ctx, blog.CategoryInput{})
		assert.ErrorIs(t, err, blog.ErrValidation)

		_, err = m.CreateCategory(ctx, blog.CategoryInput{Name: ptr("Bad"), Color: ptr("red")})
		assert.ErrorIs(t, err, blog.ErrValidation)
	})

	t.Run("update", func(t *testing.T) {
		m := newTestManager()

		c, err := m.UpdateCategory(ctx, 2, blog.CategoryInput{Description: ptr(""), IsActive: ptr(false)})
		require.NoError(t, err)
		assert.Equal(t, "Transfers", c.Name)
		assert.Empty(t, c.Description)
		assert.False(t, c.IsActive)
		assert.Equal(t, testNow, c.UpdatedAt)

		active, err := m.ActiveCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 5)

		missing, err := m.UpdateCategory(ctx, 404, blog.CategoryInput{Name: ptr("x")})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate and toggle", func(t *testing.T) {
		m := newTestManager()

		dup, err := m.DuplicateCategory(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, dup.ID)
		assert.Equal(t, "Match Reports (Copy)", dup.Name)
		assert.Equal(t, "match-reports-copy", dup.Slug)
		assert.Zero(t, dup.PostsCount)

		toggled, err := m.ToggleCategoryStatus(ctx, 7)
		require.NoError(t, err)
		assert.False(t, toggled.IsActive)
	})

	t.Run("bulk", func(t *testing.T) {
		m := newTestManager()

		res, err := m.BulkUpdateCategories(ctx, []int{1, 2, 404}, blog.CategoryActionDeactivate)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, res.Affected)
		assert.Equal(t, []int{404}, res.Missing)

		res, err = m.BulkUpdateCategories(ctx, []int{3}, blog.CategoryActionDelete)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, res.Affected)

		all, err := m.AllCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 5)
		assert.Len(t, blog.Categories(all).Active(), 3)

		_, err = m.BulkUpdateCategories(ctx, []int{1}, blog.CategoryAction("hide"))
		assert.ErrorIs(t, err, blog.ErrValidation)
	})

	t.Run("delete leaves posts", func(t *testing.T) {
		m := newTestManager()

		ok, err := m.DeleteCategory(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		posts, err := m.PostsByCategory(ctx, "transfers")
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("recount", func(t *testing.T) {
		m := newTestManager()

		cats, err := m.RecountCategoryPosts(ctx)
		require.NoError(t, err)

		counts := make(map[string]int)
		for _, c := range cats {
			counts[c.Slug] = c.PostsCount
		}
		assert.Equal(t, map[string]int{
			"match-reports": 1,
			"transfers":     2,
			"training":      0,
			"programming":   1,
			"development":   1,
			"design":        1,
		}, counts)
	})
}

// stubStore is a manual stub of blog.Store for backend failures.
type stubStore struct {
	blog.Store
	postsFunc func(ctx context.Context) ([]blog.Post, error)
}

func (s *stubStore) Posts(ctx context.Context) ([]blog.Post, error) {
	return s.postsFunc(ctx)
}

func TestManager_StoreError(t *testing.T) {
	errDown := errors.New("connection refused")
	m := blog.NewManager(&stubStore{
		postsFunc: func(ctx context.Context) ([]blog.Post, error) { return nil, errDown },
	}, noOpLogger())

	_, err := m.AllPosts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
	assert.NotErrorIs(t, err, blog.ErrValidation)
}
