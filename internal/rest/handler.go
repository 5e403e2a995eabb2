package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blogcraft/internal/admin"
	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
	"github.com/daniilsolovey/blogcraft/internal/metrics"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

const totalCountHeader = "X-Total-Count"

type Handler struct {
	blog     *blog.Manager
	catalogs *admin.Catalogs
	metrics  *metrics.Metrics
	log      *slog.Logger
}

func NewHandler(manager *blog.Manager, catalogs *admin.Catalogs, m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		blog:     manager,
		catalogs: catalogs,
		metrics:  m,
		log:      log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// fail maps a manager error: rejected input is a 400 carrying the reason,
// anything else is a 500.
func (h *Handler) fail(c echo.Context, err error) error {
	if errors.Is(err, blog.ErrValidation) {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}
	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

func (h *Handler) notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": what + " not found"})
}

func (h *Handler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	return nil
}

func (h *Handler) record(entity, action string) {
	if h.metrics != nil {
		h.metrics.RecordContentOp(entity, action)
	}
}

func parseID(c echo.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

// parseList reads the admin table query string.
func parseList(c echo.Context) (ListRequest, error) {
	var req ListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return req, fmt.Errorf("unmarshal list query: %w", err)
	}
	return req, nil
}

// writePage sets the total before paging so tables can render their pager.
func writePage[T any](c echo.Context, items []T, req ListRequest) error {
	c.Response().Header().Set(totalCountHeader, strconv.Itoa(len(items)))
	return c.JSON(http.StatusOK, listing.Page(items, req.Page, req.Limit))
}
