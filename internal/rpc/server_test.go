package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

var testNow = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func newTestManager() *blog.Manager {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return blog.NewManager(memstore.NewSeeded(), logger, blog.WithClock(func() time.Time { return testNow }))
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(t *testing.T, srv http.Handler, method, params string) rpcResponse {
	t.Helper()
	body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `","params":` + params + `}`
	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestServer_Blog(t *testing.T) {
	srv := NewPublic(slog.New(slog.NewTextHandler(io.Discard, nil)), newTestManager())

	tests := []struct {
		name     string
		method   string
		params   string
		wantCode int
		check    func(t *testing.T, raw json.RawMessage)
	}{
		{
			name:   "Posts",
			method: "blog.posts",
			params: `{}`,
			check: func(t *testing.T, raw json.RawMessage) {
				var posts PostSummaries
				require.NoError(t, json.Unmarshal(raw, &posts))
				assert.Len(t, posts, 4)
			},
		},
		{
			name:   "RecentDefaultLimit",
			method: "blog.recent",
			params: `{}`,
			check: func(t *testing.T, raw json.RawMessage) {
				var posts PostSummaries
				require.NoError(t, json.Unmarshal(raw, &posts))
				require.Len(t, posts, 4)
				assert.Equal(t, "agareb", posts[0].Slug)
			},
		},
		{
			name:   "RecentPositionalParams",
			method: "blog.recent",
			params: `[1]`,
			check: func(t *testing.T, raw json.RawMessage) {
				var posts PostSummaries
				require.NoError(t, json.Unmarshal(raw, &posts))
				assert.Len(t, posts, 1)
			},
		},
		{
			name:   "BySlug",
			method: "blog.byslug",
			params: `{"slug":"building-modern-web-apps"}`,
			check: func(t *testing.T, raw json.RawMessage) {
				var post Post
				require.NoError(t, json.Unmarshal(raw, &post))
				assert.Equal(t, 4, post.ID)
				assert.NotEmpty(t, post.Content)
			},
		},
		{
			name:     "BySlugDraft",
			method:   "blog.byslug",
			params:   `{"slug":"advanced-typescript-techniques"}`,
			wantCode: 404,
		},
		{
			name:   "Category",
			method: "blog.category",
			params: `{"slug":"transfers"}`,
			check: func(t *testing.T, raw json.RawMessage) {
				var page CategoryPage
				require.NoError(t, json.Unmarshal(raw, &page))
				assert.Equal(t, "Transfers", page.Category.Name)
				assert.Len(t, page.Posts, 2)
			},
		},
		{
			name:     "UnknownMethod",
			method:   "blog.nothing",
			params:   `{}`,
			wantCode: zenrpc.MethodNotFound,
		},
		{
			name:     "EditorMethodNotExposed",
			method:   "posts.delete",
			params:   `{"id":1}`,
			wantCode: zenrpc.MethodNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, srv, tt.method, tt.params)
			if tt.wantCode != 0 {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				return
			}
			require.Nil(t, resp.Error)
			tt.check(t, resp.Result)
		})
	}
}

func TestServer_Posts(t *testing.T) {
	srv := NewAdmin(slog.New(slog.NewTextHandler(io.Discard, nil)), newTestManager())

	resp := call(t, srv, "posts.create", `{"post":{"title":"Cup Draw","status":"published"}}`)
	require.Nil(t, resp.Error)
	var created blog.AdminPost
	require.NoError(t, json.Unmarshal(resp.Result, &created))
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "cup-draw", created.Slug)

	resp = call(t, srv, "posts.list", `{"filter":{"status":"published","pageSize":2}}`)
	require.Nil(t, resp.Error)
	var list AdminPostList
	require.NoError(t, json.Unmarshal(resp.Result, &list))
	assert.Equal(t, 5, list.Total)
	require.Len(t, list.Items, 2)
	assert.Equal(t, 7, list.Items[0].ID)

	resp = call(t, srv, "posts.create", `{"post":{"status":"gone"}}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)

	resp = call(t, srv, "posts.schedule", `{"id":3,"scheduledAt":"2025-09-10T08:00:00Z"}`)
	require.Nil(t, resp.Error)
	var scheduled blog.AdminPost
	require.NoError(t, json.Unmarshal(resp.Result, &scheduled))
	assert.Equal(t, blog.StatusScheduled, scheduled.Status)

	resp = call(t, srv, "posts.archive", `{"id":404}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	resp = call(t, srv, "posts.bulk", `{"ids":[1,2],"action":"draft"}`)
	require.Nil(t, resp.Error)
	var res blog.BulkResult
	require.NoError(t, json.Unmarshal(resp.Result, &res))
	assert.Equal(t, []int{1, 2}, res.Affected)
}

func TestServer_Categories(t *testing.T) {
	srv := NewAdmin(slog.New(slog.NewTextHandler(io.Discard, nil)), newTestManager())

	resp := call(t, srv, "categories.create", `{"category":{"name":"Fan Zone"}}`)
	require.Nil(t, resp.Error)
	var created blog.Category
	require.NoError(t, json.Unmarshal(resp.Result, &created))
	assert.Equal(t, "fan-zone", created.Slug)
	assert.Equal(t, "#2563eb", created.Color)

	resp = call(t, srv, "categories.toggle", `{"id":7}`)
	require.Nil(t, resp.Error)

	resp = call(t, srv, "categories.list", `{"filter":{"status":"inactive"}}`)
	require.Nil(t, resp.Error)
	var list CategoryList
	require.NoError(t, json.Unmarshal(resp.Result, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 7, list.Items[0].ID)

	resp = call(t, srv, "categories.bulk", `{"ids":[7],"action":"archive"}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)

	resp = call(t, srv, "categories.delete", `{"id":7}`)
	require.Nil(t, resp.Error)
	resp = call(t, srv, "categories.get", `{"id":7}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

type failingStore struct {
	blog.Store
}

func (failingStore) Posts(context.Context) ([]blog.Post, error) {
	return nil, io.ErrUnexpectedEOF
}

func TestBlogService_InternalError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	s := NewBlogService(blog.NewManager(failingStore{}, logger), logger)

	_, err := s.Posts(context.Background())
	require.Error(t, err)

	var rpcErr *zenrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 500, rpcErr.Code)
	assert.NotContains(t, rpcErr.Message, "unexpected EOF")

	assert.Contains(t, logs.String(), "rpc call failed")
	assert.Contains(t, logs.String(), "unexpected EOF")
}

func TestServer_SMD(t *testing.T) {
	srv := NewAdmin(slog.New(slog.NewTextHandler(io.Discard, nil)), newTestManager())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "posts.")
}
