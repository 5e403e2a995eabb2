package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

var (
	errNotFound = zenrpc.NewStringError(404, "not found")
	errInternal = zenrpc.NewStringError(500, "internal error")
)

// errorMapper maps manager errors onto JSON-RPC errors: rejected input is a
// 400 carrying the reason, anything else a 500 whose cause is only logged.
type errorMapper struct {
	log *slog.Logger
}

func (m errorMapper) newError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, blog.ErrValidation) {
		return zenrpc.NewStringError(400, err.Error())
	}

	m.log.ErrorContext(ctx, "rpc call failed", "error", err)
	return errInternal
}

// BlogService serves the public blog: published posts and active categories.
type BlogService struct {
	zenrpc.Service
	errorMapper
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager, logger *slog.Logger) *BlogService {
	return &BlogService{errorMapper: errorMapper{log: logger}, manager: manager}
}

// Posts returns every published post in store order.
//
//zenrpc:return published posts without content
//zenrpc:500 internal server error
func (s *BlogService) Posts(ctx context.Context) (PostSummaries, error) {
	posts, err := s.manager.AllPosts(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return NewPostSummaries(posts), nil
}

// Featured returns the first published post.
//
//zenrpc:return featured post
//zenrpc:404 no published posts
//zenrpc:500 internal server error
func (s *BlogService) Featured(ctx context.Context) (*Post, error) {
	post, err := s.manager.FeaturedPost(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if post == nil {
		return nil, errNotFound
	}
	return newPostPtr(post), nil
}

// Recent returns published posts, newest first.
//
//zenrpc:limit=4 number of posts
//zenrpc:return recent posts
//zenrpc:500 internal server error
func (s *BlogService) Recent(ctx context.Context, limit *int) (PostSummaries, error) {
	posts, err := s.manager.RecentPosts(ctx, *limit)
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return NewPostSummaries(posts), nil
}

// BySlug returns a published post with its full content.
//
//zenrpc:slug post slug
//zenrpc:return post
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, slug string) (*Post, error) {
	post, err := s.manager.PostBySlug(ctx, slug)
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}
	return newPostPtr(post), nil
}

// Related returns recent published posts other than the given one.
//
//zenrpc:slug post slug
//zenrpc:limit=2 number of posts
//zenrpc:return related posts
//zenrpc:500 internal server error
func (s *BlogService) Related(ctx context.Context, slug string, limit *int) (PostSummaries, error) {
	posts, err := s.manager.RelatedPosts(ctx, slug, *limit)
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return NewPostSummaries(posts), nil
}

// Categories returns active categories with their published post counts.
//
//zenrpc:return categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) ([]blog.PublicCategory, error) {
	categories, err := s.manager.PublicCategories(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return categories, nil
}

// Category returns an active category with its published posts.
//
//zenrpc:slug category slug
//zenrpc:return category and posts
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *BlogService) Category(ctx context.Context, slug string) (*CategoryPage, error) {
	category, err := s.manager.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if category == nil || !category.IsActive {
		return nil, zenrpc.NewStringError(404, "category not found")
	}

	posts, err := s.manager.PostsByCategory(ctx, slug)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return &CategoryPage{Category: *category, Posts: NewPostSummaries(posts)}, nil
}
