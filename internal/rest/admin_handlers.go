package rest

import (
	"net/http"

	"github.com/daniilsolovey/blogcraft/internal/admin"
	"github.com/labstack/echo/v4"
)

// Users handles GET /api/v1/admin/users
// @Summary Users table
// @Tags admin-users
// @Produce json
// @Param search query string false "Matches name or email"
// @Param role query string false "admin, editor, author, reader or all"
// @Param status query string false "active, inactive, suspended or all"
// @Param sort query string false "newest, oldest, name or posts"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size, 0 returns everything"
// @Success 200 {array} admin.User
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/users [get]
func (h *Handler) Users(c echo.Context) error {
	req, err := parseList(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	return writePage(c, h.catalogs.Users.List(req.ToModel()), req)
}

// UserStats handles GET /api/v1/admin/users/stats
// @Summary User counters
// @Tags admin-users
// @Produce json
// @Success 200 {object} admin.UserStats
// @Router /api/v1/admin/users/stats [get]
func (h *Handler) UserStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogs.Users.Stats())
}

// User handles GET /api/v1/admin/users/:id
// @Summary User by ID
// @Tags admin-users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} admin.User
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/users/{id} [get]
func (h *Handler) User(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	user := h.catalogs.Users.ByID(id)
	if user == nil {
		return h.notFound(c, "user")
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/v1/admin/users
// @Summary Invite user
// @Tags admin-users
// @Accept json
// @Produce json
// @Param user body rest.UserRequest true "User"
// @Success 201 {object} admin.User
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.catalogs.Users.Create(req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}

	h.record("user", "create")
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/v1/admin/users/:id
// @Summary Update user
// @Tags admin-users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body rest.UserRequest true "Changed fields"
// @Success 200 {object} admin.User
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/users/{id} [put]
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req UserRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.catalogs.Users.Update(id, req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}
	if user == nil {
		return h.notFound(c, "user")
	}

	h.record("user", "update")
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/admin/users/:id
// @Summary Delete user
// @Tags admin-users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} rest.DeleteResponse
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/users/{id} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if !h.catalogs.Users.Delete(id) {
		return h.notFound(c, "user")
	}

	h.record("user", "delete")
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: true})
}

// Comments handles GET /api/v1/admin/comments
// @Summary Moderation queue
// @Tags admin-comments
// @Produce json
// @Param search query string false "Matches content, author name or email"
// @Param status query string false "pending, approved, rejected, spam or all"
// @Param post query string false "Post slug or all"
// @Param sort query string false "newest, oldest or author"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size, 0 returns everything"
// @Success 200 {array} admin.Comment
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/comments [get]
func (h *Handler) Comments(c echo.Context) error {
	req, err := parseList(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	return writePage(c, h.catalogs.Comments.List(req.ToModel()), req)
}

// CommentStats handles GET /api/v1/admin/comments/stats
// @Summary Comment counters
// @Tags admin-comments
// @Produce json
// @Success 200 {object} admin.CommentStats
// @Router /api/v1/admin/comments/stats [get]
func (h *Handler) CommentStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogs.Comments.Stats())
}

// Comment handles GET /api/v1/admin/comments/:id
// @Summary Comment by ID
// @Tags admin-comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} admin.Comment
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/comments/{id} [get]
func (h *Handler) Comment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	comment := h.catalogs.Comments.ByID(id)
	if comment == nil {
		return h.notFound(c, "comment")
	}
	return c.JSON(http.StatusOK, comment)
}

// ModerateComment handles POST /api/v1/admin/comments/:id/moderate
// @Summary Moderate comment
// @Tags admin-comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param moderation body rest.ModerateRequest true "approve, reject or spam"
// @Success 200 {object} admin.Comment
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/comments/{id}/moderate [post]
func (h *Handler) ModerateComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req ModerateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	comment, err := h.catalogs.Comments.Moderate(id, admin.Moderation(req.Action))
	if err != nil {
		return h.fail(c, err)
	}
	if comment == nil {
		return h.notFound(c, "comment")
	}

	h.record("comment", req.Action)
	return c.JSON(http.StatusOK, comment)
}

// EditComment handles PUT /api/v1/admin/comments/:id
// @Summary Edit comment
// @Tags admin-comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body rest.CommentContentRequest true "New content"
// @Success 200 {object} admin.Comment
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/comments/{id} [put]
func (h *Handler) EditComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req CommentContentRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	comment, err := h.catalogs.Comments.Edit(id, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	if comment == nil {
		return h.notFound(c, "comment")
	}

	h.record("comment", "edit")
	return c.JSON(http.StatusOK, comment)
}

// ReplyComment handles POST /api/v1/admin/comments/:id/reply
// @Summary Reply to comment
// @Description Adds an approved admin comment on the same post
// @Tags admin-comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param reply body rest.CommentContentRequest true "Reply"
// @Success 201 {object} admin.Comment
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/comments/{id}/reply [post]
func (h *Handler) ReplyComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req CommentContentRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	reply, err := h.catalogs.Comments.Reply(id, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	if reply == nil {
		return h.notFound(c, "comment")
	}

	h.record("comment", "reply")
	return c.JSON(http.StatusCreated, reply)
}

// DeleteComment handles DELETE /api/v1/admin/comments/:id
// @Summary Delete comment
// @Tags admin-comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.DeleteResponse
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/comments/{id} [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if !h.catalogs.Comments.Delete(id) {
		return h.notFound(c, "comment")
	}

	h.record("comment", "delete")
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: true})
}

// BulkComments handles POST /api/v1/admin/comments/bulk
// @Summary Bulk moderation
// @Description Applies approve, reject, spam or delete to every id
// @Tags admin-comments
// @Accept json
// @Produce json
// @Param bulk body rest.BulkRequest true "Ids and action"
// @Success 200 {object} blog.BulkResult
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/comments/bulk [post]
func (h *Handler) BulkComments(c echo.Context) error {
	var req BulkRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	res, err := h.catalogs.Comments.Bulk(req.IDs, admin.Moderation(req.Action))
	if err != nil {
		return h.fail(c, err)
	}

	h.record("comment", "bulk_"+req.Action)
	return c.JSON(http.StatusOK, res)
}

// Media handles GET /api/v1/admin/media
// @Summary Media library
// @Tags admin-media
// @Produce json
// @Param search query string false "Matches name, original name or tags"
// @Param type query string false "image, video, audio, document or all"
// @Param folder query string false "Folder name or all"
// @Param sort query string false "newest, oldest, name, size or usage"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size, 0 returns everything"
// @Success 200 {array} admin.MediaFile
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/media [get]
func (h *Handler) Media(c echo.Context) error {
	req, err := parseList(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	return writePage(c, h.catalogs.Media.List(req.ToModel()), req)
}

// MediaStats handles GET /api/v1/admin/media/stats
// @Summary Media counters
// @Tags admin-media
// @Produce json
// @Success 200 {object} admin.MediaStats
// @Router /api/v1/admin/media/stats [get]
func (h *Handler) MediaStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogs.Media.Stats())
}

// MediaFolders handles GET /api/v1/admin/media/folders
// @Summary Media folders
// @Tags admin-media
// @Produce json
// @Success 200 {array} admin.Folder
// @Router /api/v1/admin/media/folders [get]
func (h *Handler) MediaFolders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogs.Media.Folders())
}

// MediaFile handles GET /api/v1/admin/media/:id
// @Summary Media file by ID
// @Tags admin-media
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} admin.MediaFile
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/media/{id} [get]
func (h *Handler) MediaFile(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	file := h.catalogs.Media.ByID(id)
	if file == nil {
		return h.notFound(c, "media file")
	}
	return c.JSON(http.StatusOK, file)
}

// UpdateMedia handles PUT /api/v1/admin/media/:id
// @Summary Update media metadata
// @Tags admin-media
// @Accept json
// @Produce json
// @Param id path int true "File ID"
// @Param media body rest.MediaRequest true "Changed fields"
// @Success 200 {object} admin.MediaFile
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/media/{id} [put]
func (h *Handler) UpdateMedia(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req MediaRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	file, err := h.catalogs.Media.Update(id, req.ToModel())
	if err != nil {
		return h.fail(c, err)
	}
	if file == nil {
		return h.notFound(c, "media file")
	}

	h.record("media", "update")
	return c.JSON(http.StatusOK, file)
}

// ToggleFavorite handles POST /api/v1/admin/media/:id/favorite
// @Summary Toggle favorite
// @Tags admin-media
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} admin.MediaFile
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/media/{id}/favorite [post]
func (h *Handler) ToggleFavorite(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	file := h.catalogs.Media.ToggleFavorite(id)
	if file == nil {
		return h.notFound(c, "media file")
	}

	h.record("media", "favorite")
	return c.JSON(http.StatusOK, file)
}

// DeleteMedia handles DELETE /api/v1/admin/media/:id
// @Summary Delete media file
// @Tags admin-media
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} rest.DeleteResponse
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/admin/media/{id} [delete]
func (h *Handler) DeleteMedia(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if !h.catalogs.Media.Delete(id) {
		return h.notFound(c, "media file")
	}

	h.record("media", "delete")
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: true})
}

// BulkDeleteMedia handles POST /api/v1/admin/media/bulk-delete
// @Summary Delete several media files
// @Tags admin-media
// @Accept json
// @Produce json
// @Param ids body rest.IDsRequest true "File IDs"
// @Success 200 {object} blog.BulkResult
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/media/bulk-delete [post]
func (h *Handler) BulkDeleteMedia(c echo.Context) error {
	var req IDsRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	h.record("media", "bulk_delete")
	return c.JSON(http.StatusOK, h.catalogs.Media.BulkDelete(req.IDs))
}
