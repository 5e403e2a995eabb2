package rest

import (
	"net/http"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
	"github.com/labstack/echo/v4"
)

// AdminCategories handles GET /api/v1/admin/categories
// @Summary Admin categories table
// @Tags admin-categories
// @Produce json
// @Param search query string false "Matches name or description"
// @Param status query string false "active, inactive or all"
// @Param sort query string false "newest, oldest, name or posts"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size, 0 returns everything"
// @Success 200 {array} blog.Category
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/categories [get]
func (h *Handler) AdminCategories(c echo.Context) error {
	req, err := parseList(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	categories, err := h.blog.AllCategories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return writePage(c, listing.Apply(categories, blog.CategoryListing, req.ToModel()), req)
}

// AdminCategory handles GET /api/v1/admin/categories/:id
// @Summary Category by ID
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} blog.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [get]
func (h *Handler) AdminCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	category, err := h.blog.CategoryByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if category == nil {
		return h.notFound(c, "category")
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/v1/admin/categories
// @Summary Create category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param category body rest.CategoryRequest true "Category"
// @Success 201 {object} blog.Category
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	category, err := h.blog.CreateCategory(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}

	h.record("category", "create")
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
// @Summary Update category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body rest.CategoryRequest true "Changed fields"
// @Success 200 {object} blog.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req CategoryRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	category, err := h.blog.UpdateCategory(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}
	if category == nil {
		return h.notFound(c, "category")
	}

	h.record("category", "update")
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
// @Summary Delete category
// @Description Posts keep their category snapshot
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.DeleteResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ok, err := h.blog.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return h.notFound(c, "category")
	}

	h.record("category", "delete")
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: true})
}

// DuplicateCategory handles POST /api/v1/admin/categories/:id/duplicate
// @Summary Duplicate category
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 201 {object} blog.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id}/duplicate [post]
func (h *Handler) DuplicateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	category, err := h.blog.DuplicateCategory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if category == nil {
		return h.notFound(c, "category")
	}

	h.record("category", "duplicate")
	return c.JSON(http.StatusCreated, category)
}

// ToggleCategory handles POST /api/v1/admin/categories/:id/toggle
// @Summary Toggle category
// @Description Flips isActive
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} blog.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id}/toggle [post]
func (h *Handler) ToggleCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	category, err := h.blog.ToggleCategoryStatus(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if category == nil {
		return h.notFound(c, "category")
	}

	h.record("category", "toggle")
	return c.JSON(http.StatusOK, category)
}

// BulkCategories handles POST /api/v1/admin/categories/bulk
// @Summary Bulk category action
// @Description Applies activate, deactivate or delete to every id
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param bulk body rest.BulkRequest true "Ids and action"
// @Success 200 {object} blog.BulkResult
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/categories/bulk [post]
func (h *Handler) BulkCategories(c echo.Context) error {
	var req BulkRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	res, err := h.blog.BulkUpdateCategories(c.Request().Context(), req.IDs, blog.CategoryAction(req.Action))
	if err != nil {
		return h.fail(c, err)
	}

	h.record("category", "bulk_"+req.Action)
	return c.JSON(http.StatusOK, res)
}

// RecountCategories handles POST /api/v1/admin/categories/recount
// @Summary Recount category posts
// @Description Rewrites postsCount from the posts referencing each category
// @Tags admin-categories
// @Produce json
// @Success 200 {array} blog.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/categories/recount [post]
func (h *Handler) RecountCategories(c echo.Context) error {
	categories, err := h.blog.RecountCategoryPosts(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	h.record("category", "recount")
	return c.JSON(http.StatusOK, categories)
}
