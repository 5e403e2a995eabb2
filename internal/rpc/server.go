package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	NSBlog       = "blog"
	NSPosts      = "posts"
	NSCategories = "categories"
)

// NewPublic builds the JSON-RPC server for readers: the "blog" namespace
// only.
func NewPublic(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcServer := newServer(logger)
	rpcServer.Register(NSBlog, NewBlogService(manager, logger))
	return rpcServer
}

// NewAdmin builds the JSON-RPC server for the editor: "posts" and
// "categories". It is mounted behind the admin key.
func NewAdmin(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcServer := newServer(logger)
	rpcServer.Register(NSPosts, NewPostService(manager, logger))
	rpcServer.Register(NSCategories, NewCategoryService(manager, logger))
	return rpcServer
}

func newServer(logger *slog.Logger) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true, AllowCORS: true})
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogcraft", nil))
	return rpcServer
}
