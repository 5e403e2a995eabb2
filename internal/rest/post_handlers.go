package rest

import (
	"net/http"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
	"github.com/labstack/echo/v4"
)

// AdminPosts handles GET /api/v1/admin/posts
// @Summary Admin posts table
// @Description Lists posts of any status with search, filters, sorting and paging. The unpaged total is in X-Total-Count
// @Tags admin-posts
// @Produce json
// @Param search query string false "Matches title, author or category"
// @Param status query string false "draft, published, scheduled, archived or all"
// @Param category query string false "Category display name or all"
// @Param sort query string false "newest, oldest, title or views"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size, 0 returns everything"
// @Success 200 {array} blog.AdminPost
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/posts [get]
func (h *Handler) AdminPosts(c echo.Context) error {
	req, err := parseList(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.blog.AdminPosts(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return writePage(c, listing.Apply(posts, blog.AdminPostListing, req.ToModel()), req)
}

// AdminPost handles GET /api/v1/admin/posts/:id
// @Summary Post for editing
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} blog.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id} [get]
func (h *Handler) AdminPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.blog.AdminPostByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}
	return c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /api/v1/admin/posts
// @Summary Create post
// @Description Missing fields get defaults. The new post goes to the front of the list
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param post body rest.PostRequest true "Post"
// @Success 201 {object} blog.AdminPost
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/posts [post]
func (h *Handler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	post, err := h.blog.CreatePost(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}

	h.record("post", "create")
	return c.JSON(http.StatusCreated, post)
}

// PreviewPost handles POST /api/v1/admin/posts/preview
// @Summary Preview post
// @Description Builds the post a create would store, without storing it
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param post body rest.PostRequest true "Post"
// @Success 200 {object} blog.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/posts/preview [post]
func (h *Handler) PreviewPost(c echo.Context) error {
	var req PostRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	post, err := h.blog.PreviewPost(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT /api/v1/admin/posts/:id
// @Summary Update post
// @Description Merges the given fields onto the post
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body rest.PostRequest true "Changed fields"
// @Success 200 {object} blog.AdminPost
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id} [put]
func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req PostRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	post, err := h.blog.UpdatePost(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}

	h.record("post", "update")
	return c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/v1/admin/posts/:id
// @Summary Delete post
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.DeleteResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id} [delete]
func (h *Handler) DeletePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ok, err := h.blog.DeletePost(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return h.notFound(c, "post")
	}

	h.record("post", "delete")
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: true})
}

// ArchivePost handles POST /api/v1/admin/posts/:id/archive
// @Summary Archive post
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} blog.AdminPost
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id}/archive [post]
func (h *Handler) ArchivePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.blog.ArchivePost(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}

	h.record("post", "archive")
	return c.JSON(http.StatusOK, post)
}

// DuplicatePost handles POST /api/v1/admin/posts/:id/duplicate
// @Summary Duplicate post
// @Description Appends a draft copy of the post
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 201 {object} blog.AdminPost
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id}/duplicate [post]
func (h *Handler) DuplicatePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.blog.DuplicatePost(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}

	h.record("post", "duplicate")
	return c.JSON(http.StatusCreated, post)
}

// SchedulePost handles POST /api/v1/admin/posts/:id/schedule
// @Summary Schedule post
// @Description Schedules at the given time, or tomorrow at 10:00 when the body is empty
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param schedule body rest.ScheduleRequest false "Schedule time"
// @Success 200 {object} blog.AdminPost
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id}/schedule [post]
func (h *Handler) SchedulePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req ScheduleRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	post, err := h.blog.SchedulePost(c.Request().Context(), id, req.ScheduledAt)
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.notFound(c, "post")
	}

	h.record("post", "schedule")
	return c.JSON(http.StatusOK, post)
}

// BulkPosts handles POST /api/v1/admin/posts/bulk
// @Summary Bulk post action
// @Description Applies publish, draft, archive or delete to every id
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param bulk body rest.BulkRequest true "Ids and action"
// @Success 200 {object} blog.BulkResult
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/posts/bulk [post]
func (h *Handler) BulkPosts(c echo.Context) error {
	var req BulkRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	res, err := h.blog.BulkUpdatePosts(c.Request().Context(), req.IDs, blog.PostAction(req.Action))
	if err != nil {
		return h.fail(c, err)
	}

	h.record("post", "bulk_"+req.Action)
	return c.JSON(http.StatusOK, res)
}
