package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Posts handles GET /api/v1/blog/posts
// @Summary Published posts
// @Description Returns every published post in store order
// @Tags blog
// @Produce json
// @Success 200 {array} blog.Post
// @Failure 500 {object} map[string]string
// @Router /api/v1/blog/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	posts, err := h.blog.AllPosts(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// FeaturedPost handles GET /api/v1/blog/posts/featured
// @Summary Featured post
// @Description Returns the first published post
// @Tags blog
// @Produce json
// @Success 200 {object} blog.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/blog/posts/featured [get]
func (h *Handler) FeaturedPost(c echo.Context) error {
	post, err := h.blog.FeaturedPost(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}
	return c.JSON(http.StatusOK, post)
}

// RecentPosts handles GET /api/v1/blog/posts/recent
// @Summary Recent posts
// @Description Returns published posts newest first
// @Tags blog
// @Produce json
// @Param limit query int false "Number of posts (default: 4)"
// @Success 200 {array} blog.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/blog/posts/recent [get]
func (h *Handler) RecentPosts(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid limit")
	}

	posts, err := h.blog.RecentPosts(c.Request().Context(), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// PostBySlug handles GET /api/v1/blog/posts/:slug
// @Summary Post by slug
// @Description Returns a published post with its full content
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} blog.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/blog/posts/{slug} [get]
func (h *Handler) PostBySlug(c echo.Context) error {
	post, err := h.blog.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}
	return c.JSON(http.StatusOK, post)
}

// RelatedPosts handles GET /api/v1/blog/posts/:slug/related
// @Summary Related posts
// @Description Returns recent published posts other than the given one
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Param limit query int false "Number of posts (default: 2)"
// @Success 200 {array} blog.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/blog/posts/{slug}/related [get]
func (h *Handler) RelatedPosts(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid limit")
	}

	posts, err := h.blog.RelatedPosts(c.Request().Context(), c.Param("slug"), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// PublicCategories handles GET /api/v1/blog/categories
// @Summary Active categories
// @Description Returns active categories with their published post counts
// @Tags blog
// @Produce json
// @Success 200 {array} blog.PublicCategory
// @Failure 500 {object} map[string]string
// @Router /api/v1/blog/categories [get]
func (h *Handler) PublicCategories(c echo.Context) error {
	categories, err := h.blog.PublicCategories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CategoryPage handles GET /api/v1/blog/categories/:slug
// @Summary Category page
// @Description Returns a category and its published posts
// @Tags blog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} rest.CategoryPage
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/blog/categories/{slug} [get]
func (h *Handler) CategoryPage(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	category, err := h.blog.CategoryBySlug(ctx, slug)
	if err != nil {
		return h.fail(c, err)
	}
	if category == nil || !category.IsActive {
		return h.notFound(c, "category")
	}

	posts, err := h.blog.PostsByCategory(ctx, slug)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, CategoryPage{Category: *category, Posts: posts})
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
