//go:build integration

package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(testDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := resetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := Migrate(ctx, opt); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := ensureTablesExist(ctx, testDB, []string{"posts", "categories"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := loadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestRepository_Posts_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	posts, err := repo.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 6)

	for i, p := range posts {
		assert.Equal(t, i+1, p.ID, "seed order must be kept")
	}

	first := posts[0]
	assert.Equal(t, "asa-wins-championship-final-wydad", first.Slug)
	assert.Equal(t, blog.StatusPublished, first.Status)
	require.NotNil(t, first.PublishedAt)
	assert.True(t, first.PublishedAt.Equal(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, []blog.Tag{
		{Name: "Championship", Slug: "championship"},
		{Name: "Victory", Slug: "victory"},
		{Name: "Wydad", Slug: "wydad"},
		{Name: "Final", Slug: "final"},
	}, first.Tags)
	assert.Equal(t, "Ahmed Benali", first.Author.Name)
	assert.Nil(t, first.Author.Avatar)
}

func TestRepository_PostByID_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	p, err := repo.PostByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, blog.StatusScheduled, p.Status)
	assert.NotNil(t, p.ScheduledAt)
	assert.Nil(t, p.PublishedAt)

	missing, err := repo.PostByID(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_InsertPost_Integration(t *testing.T) {
	tests := []struct {
		name      string
		place     blog.Placement
		wantFirst bool
	}{
		{name: "Front", place: blog.PlaceFront, wantFirst: true},
		{name: "Back", place: blog.PlaceBack, wantFirst: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, repo := withTx(t)

			p, err := repo.InsertPost(ctx, tt.place, func(id int) blog.Post {
				return blog.Post{
					ID:        id,
					Title:     "Inserted",
					Slug:      fmt.Sprintf("inserted-%d", id),
					Author:    blog.Author{Name: "Current User"},
					Category:  blog.CategoryRef{Name: "General", Slug: "general"},
					Tags:      []blog.Tag{},
					Status:    blog.StatusDraft,
					UpdatedAt: time.Now(),
				}
			})
			require.NoError(t, err)
			assert.Equal(t, 7, p.ID)

			posts, err := repo.Posts(ctx)
			require.NoError(t, err)
			require.Len(t, posts, 7)
			if tt.wantFirst {
				assert.Equal(t, 7, posts[0].ID)
			} else {
				assert.Equal(t, 7, posts[len(posts)-1].ID)
			}
		})
	}
}

func TestRepository_ModifyPost_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	p, err := repo.ModifyPost(ctx, 2, func(p *blog.Post) {
		p.Title = "Changed"
		p.Tags = []blog.Tag{{Name: "Only", Slug: "only"}}
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Changed", p.Title)

	stored, err := repo.PostByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Changed", stored.Title)
	assert.Equal(t, []blog.Tag{{Name: "Only", Slug: "only"}}, stored.Tags)

	posts, err := repo.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, posts[1].ID, "modify must keep position")

	missing, err := repo.ModifyPost(ctx, 404, func(p *blog.Post) {})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_DeletePost_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	ok, err := repo.DeletePost(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeletePost(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_Categories_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, "match-reports", cats[0].Slug)

	c, err := repo.InsertCategory(ctx, func(id int) blog.Category {
		return blog.Category{ID: id, Name: "Youth", Slug: "youth", Color: "#2563eb", IsActive: true}
	})
	require.NoError(t, err)
	assert.Equal(t, 7, c.ID)

	c, err = repo.ModifyCategory(ctx, 7, func(c *blog.Category) { c.IsActive = false })
	require.NoError(t, err)
	assert.False(t, c.IsActive)

	byID, err := repo.CategoryByID(ctx, 7)
	require.NoError(t, err)
	assert.False(t, byID.IsActive)

	ok, err := repo.DeleteCategory(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	missing, err := repo.CategoryByID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_Manager_Integration(t *testing.T) {
	ctx, repo := withTx(t)
	m := blog.NewManager(repo, noOpLogger())

	admin, err := m.DuplicatePost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "asa-wins-championship-final-wydad-copy-7", admin.Slug)

	recent, err := m.RecentPosts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "agareb", recent[0].Slug)
}
