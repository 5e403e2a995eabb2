package rest

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"
	blogPrefix  = apiV1Prefix + "/blog"
	adminPrefix = apiV1Prefix + "/admin"

	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/rpc"

	contentTypeJSON = "application/json"

	rateLimitExpiry = 3 * time.Minute
)

// RouteConfig holds the server options the routes depend on.
type RouteConfig struct {
	// AdminKey protects /api/v1/admin with a bearer token. Empty leaves the
	// admin API open.
	AdminKey string
	// RateLimit is requests per second per client IP. Zero disables it.
	RateLimit float64
	// RPC is the public JSON-RPC server, mounted at /rpc when set.
	RPC http.Handler
	// AdminRPC is the editor JSON-RPC server, mounted at /api/v1/admin/rpc
	// behind AdminKey when set.
	AdminRPC http.Handler
}

// RegisterRoutes builds the echo engine with every route and middleware.
func (h *Handler) RegisterRoutes(cfg RouteConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.requestLogger())
	e.Use(middleware.Recover())
	if h.metrics != nil {
		e.Use(h.metrics.Middleware())
	}
	if cfg.RateLimit > 0 {
		e.Use(h.rateLimiter(cfg.RateLimit))
	}

	h.registerBlogRoutes(e.Group(blogPrefix))

	adminGroup := e.Group(adminPrefix)
	if cfg.AdminKey != "" {
		adminGroup.Use(h.adminAuth(cfg.AdminKey))
	}
	h.registerAdminRoutes(adminGroup)
	if cfg.AdminRPC != nil {
		adminGroup.Any(rpcPath, echo.WrapHandler(cfg.AdminRPC))
	}

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)
	if h.metrics != nil {
		e.GET(metricsPath, echo.WrapHandler(h.metrics.Handler()))
	}
	if cfg.RPC != nil {
		e.Any(rpcPath, echo.WrapHandler(cfg.RPC))
	}

	return e
}

func (h *Handler) registerBlogRoutes(g *echo.Group) {
	g.GET("/posts", h.Posts)
	g.GET("/posts/featured", h.FeaturedPost)
	g.GET("/posts/recent", h.RecentPosts)
	g.GET("/posts/:slug", h.PostBySlug)
	g.GET("/posts/:slug/related", h.RelatedPosts)
	g.GET("/categories", h.PublicCategories)
	g.GET("/categories/:slug", h.CategoryPage)
}

func (h *Handler) registerAdminRoutes(g *echo.Group) {
	g.GET("/posts", h.AdminPosts)
	g.POST("/posts", h.CreatePost)
	g.POST("/posts/preview", h.PreviewPost)
	g.POST("/posts/bulk", h.BulkPosts)
	g.GET("/posts/:id", h.AdminPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/archive", h.ArchivePost)
	g.POST("/posts/:id/duplicate", h.DuplicatePost)
	g.POST("/posts/:id/schedule", h.SchedulePost)

	g.GET("/categories", h.AdminCategories)
	g.POST("/categories", h.CreateCategory)
	g.POST("/categories/bulk", h.BulkCategories)
	g.POST("/categories/recount", h.RecountCategories)
	g.GET("/categories/:id", h.AdminCategory)
	g.PUT("/categories/:id", h.UpdateCategory)
	g.DELETE("/categories/:id", h.DeleteCategory)
	g.POST("/categories/:id/duplicate", h.DuplicateCategory)
	g.POST("/categories/:id/toggle", h.ToggleCategory)

	g.GET("/users", h.Users)
	g.POST("/users", h.CreateUser)
	g.GET("/users/stats", h.UserStats)
	g.GET("/users/:id", h.User)
	g.PUT("/users/:id", h.UpdateUser)
	g.DELETE("/users/:id", h.DeleteUser)

	g.GET("/comments", h.Comments)
	g.GET("/comments/stats", h.CommentStats)
	g.POST("/comments/bulk", h.BulkComments)
	g.GET("/comments/:id", h.Comment)
	g.PUT("/comments/:id", h.EditComment)
	g.DELETE("/comments/:id", h.DeleteComment)
	g.POST("/comments/:id/moderate", h.ModerateComment)
	g.POST("/comments/:id/reply", h.ReplyComment)

	g.GET("/media", h.Media)
	g.GET("/media/stats", h.MediaStats)
	g.GET("/media/folders", h.MediaFolders)
	g.POST("/media/bulk-delete", h.BulkDeleteMedia)
	g.GET("/media/:id", h.MediaFile)
	g.PUT("/media/:id", h.UpdateMedia)
	g.DELETE("/media/:id", h.DeleteMedia)
	g.POST("/media/:id/favorite", h.ToggleFavorite)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger doc is not registered")
	}
	return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.InfoContext(c.Request().Context(), "HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

func (h *Handler) rateLimiter(perSecond float64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     max(1, int(perSecond)),
		ExpiresIn: rateLimitExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return h.handleError(c, err, http.StatusForbidden, "cannot identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			h.log.Warn("rate limit exceeded", "client", identifier)
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		},
	})
}

func (h *Handler) adminAuth(key string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(got string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			h.log.Warn("admin auth rejected", "error", err, "remote_addr", c.RealIP())
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	})
}

// httpErrorHandler keeps echo's own errors (unknown route, bad method,
// panics) in the same {"error": ...} shape the handlers use.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}
	if code == http.StatusNotFound {
		message = "not found"
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": message})
	}
	if err != nil {
		h.log.Error("failed to write error response", "error", err)
	}
}
