package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "github.com/daniilsolovey/blogcraft/docs"
	"github.com/daniilsolovey/blogcraft/internal/admin"
	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/memstore"
	"github.com/daniilsolovey/blogcraft/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, cfg RouteConfig) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := func() time.Time { return testNow }

	manager := blog.NewManager(memstore.NewSeeded(), logger, blog.WithClock(now))
	h := NewHandler(manager, admin.NewSeededCatalogs(logger, now), metrics.New(), logger)
	return h.RegisterRoutes(cfg)
}

func do(e *echo.Echo, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandler_Blog(t *testing.T) {
	e := newTestServer(t, RouteConfig{})

	t.Run("PublishedPosts", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts", "")
		require.Equal(t, http.StatusOK, rec.Code)

		posts := decode[[]blog.Post](t, rec)
		require.Len(t, posts, 4)
		for _, p := range posts {
			assert.Equal(t, blog.StatusPublished, p.Status)
		}
	})

	t.Run("Featured", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts/featured", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decode[blog.Post](t, rec).ID)
	})

	t.Run("Recent", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts/recent?limit=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		posts := decode[[]blog.Post](t, rec)
		require.Len(t, posts, 2)
		assert.Equal(t, "agareb", posts[0].Slug)
		assert.Equal(t, 1, posts[1].ID)
	})

	t.Run("RecentBadLimit", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts/recent?limit=many", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("BySlug", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts/new-signing-youssef-amrani", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, decode[blog.Post](t, rec).ID)
	})

	t.Run("DraftIsHidden", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts/advanced-typescript-techniques", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "post not found", decode[map[string]string](t, rec)["error"])
	})

	t.Run("Related", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/posts/agareb/related", "")
		require.Equal(t, http.StatusOK, rec.Code)

		posts := decode[[]blog.Post](t, rec)
		require.Len(t, posts, 2)
		assert.Equal(t, []int{1, 2}, []int{posts[0].ID, posts[1].ID})
	})

	t.Run("Categories", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)

		cats := decode[[]blog.PublicCategory](t, rec)
		require.Len(t, cats, 6)
		assert.Equal(t, 1, cats[0].PublishedCount)
		assert.Equal(t, 2, cats[1].PublishedCount)
	})

	t.Run("CategoryPage", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/categories/transfers", "")
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[CategoryPage](t, rec)
		assert.Equal(t, "Transfers", page.Category.Name)
		require.Len(t, page.Posts, 2)
		assert.Equal(t, 2, page.Posts[0].ID)
		assert.Equal(t, 6, page.Posts[1].ID)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/blog/categories/cooking", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_AdminPosts(t *testing.T) {
	t.Run("ListSortedAndPaged", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodGet, "/api/v1/admin/posts?limit=3&page=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "6", rec.Header().Get(totalCountHeader))

		posts := decode[[]blog.AdminPost](t, rec)
		require.Len(t, posts, 3)
		assert.Equal(t, []int{6, 1, 2}, []int{posts[0].ID, posts[1].ID, posts[2].ID})
	})

	t.Run("ListFiltered", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodGet, "/api/v1/admin/posts?status=published&search=asa&sort=title", "")
		require.Equal(t, http.StatusOK, rec.Code)

		posts := decode[[]blog.AdminPost](t, rec)
		require.Len(t, posts, 2)
		assert.Equal(t, 1, posts[0].ID)
		assert.Equal(t, 2, posts[1].ID)
	})

	t.Run("BadQuery", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})
		rec := do(e, http.MethodGet, "/api/v1/admin/posts?page=first", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PageFarPastTheEnd", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})
		rec := do(e, http.MethodGet, "/api/v1/admin/posts?page=92233720368547760&limit=100", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "6", rec.Header().Get(totalCountHeader))
		assert.Empty(t, decode[[]blog.AdminPost](t, rec))
	})

	t.Run("CreateThenEdit", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodPost, "/api/v1/admin/posts", `{"title":"Season Preview","category":"match-reports","tags":["Preview"],"status":"published"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[blog.AdminPost](t, rec)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, "season-preview", created.Slug)
		assert.Equal(t, "Match Reports", created.Category)
		require.NotNil(t, created.PublishDate)
		assert.Equal(t, "2025-09-01", *created.PublishDate)

		rec = do(e, http.MethodPut, "/api/v1/admin/posts/7", `{"status":"draft","tags":[]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[blog.AdminPost](t, rec)
		assert.Equal(t, blog.StatusDraft, updated.Status)
		assert.Nil(t, updated.PublishDate)
		assert.Empty(t, updated.Tags)

		rec = do(e, http.MethodGet, "/api/v1/admin/posts/7", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Season Preview", decode[blog.Post](t, rec).Title)
	})

	t.Run("CreateInvalidStatus", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodPost, "/api/v1/admin/posts", `{"status":"hidden"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[map[string]string](t, rec)["error"], "unknown post status")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})
		rec := do(e, http.MethodPost, "/api/v1/admin/posts", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Preview", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodPost, "/api/v1/admin/posts/preview", `{"title":"Draft Idea","contentMarkdown":"# Hello"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		preview := decode[blog.Post](t, rec)
		assert.Contains(t, preview.Content, "<h1>Hello</h1>")

		rec = do(e, http.MethodGet, "/api/v1/admin/posts?limit=0", "")
		assert.Equal(t, "6", rec.Header().Get(totalCountHeader))
	})

	t.Run("Lifecycle", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodPost, "/api/v1/admin/posts/1/archive", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, blog.StatusArchived, decode[blog.AdminPost](t, rec).Status)

		rec = do(e, http.MethodPost, "/api/v1/admin/posts/2/duplicate", "")
		require.Equal(t, http.StatusCreated, rec.Code)
		dup := decode[blog.AdminPost](t, rec)
		assert.Equal(t, "new-signing-youssef-amrani-copy-7", dup.Slug)

		rec = do(e, http.MethodPost, "/api/v1/admin/posts/3/schedule", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, blog.StatusScheduled, decode[blog.AdminPost](t, rec).Status)

		rec = do(e, http.MethodPost, "/api/v1/admin/posts/3/schedule", `{"scheduledAt":"2020-01-01T00:00:00Z"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, http.MethodDelete, "/api/v1/admin/posts/4", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[DeleteResponse](t, rec).Deleted)

		rec = do(e, http.MethodDelete, "/api/v1/admin/posts/4", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bulk", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		rec := do(e, http.MethodPost, "/api/v1/admin/posts/bulk", `{"ids":[3,5,99],"action":"publish"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[blog.BulkResult](t, rec)
		assert.Equal(t, []int{3, 5}, res.Affected)
		assert.Equal(t, []int{99}, res.Missing)

		rec = do(e, http.MethodPost, "/api/v1/admin/posts/bulk", `{"ids":[1],"action":"explode"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		e := newTestServer(t, RouteConfig{})

		for _, path := range []string{"/api/v1/admin/posts/abc", "/api/v1/admin/posts/0"} {
			rec := do(e, http.MethodGet, path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
		rec := do(e, http.MethodGet, "/api/v1/admin/posts/404", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_AdminCategories(t *testing.T) {
	e := newTestServer(t, RouteConfig{})

	rec := do(e, http.MethodGet, "/api/v1/admin/categories?sort=name&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "6", rec.Header().Get(totalCountHeader))
	cats := decode[[]blog.Category](t, rec)
	require.Len(t, cats, 2)
	assert.Equal(t, "Design", cats[0].Name)
	assert.Equal(t, "Development", cats[1].Name)

	rec = do(e, http.MethodPost, "/api/v1/admin/categories", `{"name":"Youth Academy","color":"#123abc"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[blog.Category](t, rec)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "youth-academy", created.Slug)

	rec = do(e, http.MethodPost, "/api/v1/admin/categories", `{"name":"Bad","color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPut, "/api/v1/admin/categories/7", `{"description":"Young players"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Young players", decode[blog.Category](t, rec).Description)

	rec = do(e, http.MethodPost, "/api/v1/admin/categories/7/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[blog.Category](t, rec).IsActive)

	rec = do(e, http.MethodGet, "/api/v1/blog/categories/youth-academy", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "inactive categories are not public")

	rec = do(e, http.MethodPost, "/api/v1/admin/categories/7/duplicate", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "youth-academy-copy", decode[blog.Category](t, rec).Slug)

	rec = do(e, http.MethodPost, "/api/v1/admin/categories/bulk", `{"ids":[7,8,42],"action":"delete"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{42}, decode[blog.BulkResult](t, rec).Missing)

	rec = do(e, http.MethodPost, "/api/v1/admin/categories/recount", "")
	require.Equal(t, http.StatusOK, rec.Code)
	recounted := decode[[]blog.Category](t, rec)
	require.Len(t, recounted, 6)
	assert.Equal(t, 2, recounted[1].PostsCount)

	rec = do(e, http.MethodDelete, "/api/v1/admin/categories/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AdminCatalogs(t *testing.T) {
	e := newTestServer(t, RouteConfig{})

	t.Run("Users", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/admin/users?role=admin", "")
		require.Equal(t, http.StatusOK, rec.Code)
		users := decode[[]admin.User](t, rec)
		require.Len(t, users, 1)
		assert.Equal(t, "Sarah Johnson", users[0].Name)

		rec = do(e, http.MethodPost, "/api/v1/admin/users", `{"name":"Omar","email":"omar@example.com","role":"author"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "2025-09-01", decode[admin.User](t, rec).JoinDate)

		rec = do(e, http.MethodPost, "/api/v1/admin/users", `{"name":"Omar","email":"OMAR@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, http.MethodPut, "/api/v1/admin/users/4", `{"status":"suspended"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, admin.UserSuspended, decode[admin.User](t, rec).Status)

		rec = do(e, http.MethodGet, "/api/v1/admin/users/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, decode[admin.UserStats](t, rec).Total)

		rec = do(e, http.MethodDelete, "/api/v1/admin/users/5", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		rec = do(e, http.MethodGet, "/api/v1/admin/users/5", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Comments", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/admin/comments?status=pending", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[[]admin.Comment](t, rec), 1)

		rec = do(e, http.MethodPost, "/api/v1/admin/comments/1/moderate", `{"action":"approve"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, admin.CommentApproved, decode[admin.Comment](t, rec).Status)

		rec = do(e, http.MethodPost, "/api/v1/admin/comments/1/moderate", `{"action":"delete"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, http.MethodPost, "/api/v1/admin/comments/2/reply", `{"content":"Thanks!"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		reply := decode[admin.Comment](t, rec)
		require.NotNil(t, reply.ReplyTo)
		assert.Equal(t, 2, *reply.ReplyTo)

		rec = do(e, http.MethodPut, "/api/v1/admin/comments/2", `{"content":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, http.MethodPost, "/api/v1/admin/comments/bulk", `{"ids":[3,4],"action":"delete"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{3, 4}, decode[blog.BulkResult](t, rec).Affected)

		rec = do(e, http.MethodGet, "/api/v1/admin/comments/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)
		stats := decode[admin.CommentStats](t, rec)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 0, stats.Spam)
	})

	t.Run("Media", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/admin/media?type=image&sort=size", "")
		require.Equal(t, http.StatusOK, rec.Code)
		files := decode[[]admin.MediaFile](t, rec)
		require.Len(t, files, 3)
		assert.Equal(t, 4, files[0].ID)

		rec = do(e, http.MethodPut, "/api/v1/admin/media/1", `{"alt":"Trophy lift","tags":["Trophy"]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Trophy lift", decode[admin.MediaFile](t, rec).Alt)

		rec = do(e, http.MethodPost, "/api/v1/admin/media/1/favorite", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(e, http.MethodPost, "/api/v1/admin/media/bulk-delete", `{"ids":[5,6,77]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{77}, decode[blog.BulkResult](t, rec).Missing)

		rec = do(e, http.MethodGet, "/api/v1/admin/media/folders", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]admin.Folder](t, rec), 4)

		rec = do(e, http.MethodGet, "/api/v1/admin/media/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 4, decode[admin.MediaStats](t, rec).Total)

		rec = do(e, http.MethodDelete, "/api/v1/admin/media/6", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_AdminAuth(t *testing.T) {
	e := newTestServer(t, RouteConfig{AdminKey: "s3cret"})

	tests := []struct {
		name    string
		headers []string
		want    int
	}{
		{name: "MissingKey", want: http.StatusUnauthorized},
		{name: "WrongKey", headers: []string{echo.HeaderAuthorization, "Bearer nope"}, want: http.StatusUnauthorized},
		{name: "ValidKey", headers: []string{echo.HeaderAuthorization, "Bearer s3cret"}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/v1/admin/posts", "", tt.headers...)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	rec := do(e, http.MethodGet, "/api/v1/blog/posts", "")
	assert.Equal(t, http.StatusOK, rec.Code, "public routes need no key")
}

func TestHandler_RateLimit(t *testing.T) {
	e := newTestServer(t, RouteConfig{RateLimit: 1})

	first := do(e, http.MethodGet, "/health", "")
	second := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHandler_Service(t *testing.T) {
	e := newTestServer(t, RouteConfig{})

	t.Run("Health", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/nothing", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", decode[map[string]string](t, rec)["error"])
	})

	t.Run("Metrics", func(t *testing.T) {
		do(e, http.MethodPost, "/api/v1/admin/posts", `{"title":"Counted"}`)

		rec := do(e, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `blogcraft_content_operations_total{action="create",entity="post"} 1`)
		assert.Contains(t, rec.Body.String(), `route="/api/v1/admin/posts"`)
	})

	t.Run("Swagger", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"swagger": "2.0"`)
	})
}
