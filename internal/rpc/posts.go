package rpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
	"github.com/vmkteam/zenrpc/v2"
)

// PostService is the admin editor: every post regardless of status.
type PostService struct {
	zenrpc.Service
	errorMapper
	manager *blog.Manager
}

func NewPostService(manager *blog.Manager, logger *slog.Logger) *PostService {
	return &PostService{errorMapper: errorMapper{log: logger}, manager: manager}
}

var errPostNotFound = zenrpc.NewStringError(404, "post not found")

// List returns the admin posts table with the unpaged total.
//
//zenrpc:filter search, filters, sort and paging
//zenrpc:return page of posts and total
//zenrpc:500 internal server error
func (s *PostService) List(ctx context.Context, filter ListFilter) (*AdminPostList, error) {
	posts, err := s.manager.AdminPosts(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	matched := listing.Apply(posts, blog.AdminPostListing, filter.ToModel())
	return &AdminPostList{
		Items: listing.Page(matched, filter.Page, filter.PageSize),
		Total: len(matched),
	}, nil
}

// Get returns the full post for editing.
//
//zenrpc:id post id
//zenrpc:return post
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Get(ctx context.Context, id int) (*blog.Post, error) {
	post, err := s.manager.AdminPostByID(ctx, id)
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if post == nil {
		return nil, errPostNotFound
	}
	return post, nil
}

// Create stores a new post at the front of the list.
//
//zenrpc:post post fields, missing ones get defaults
//zenrpc:return created post
//zenrpc:400 invalid input
//zenrpc:500 internal server error
func (s *PostService) Create(ctx context.Context, post PostInput) (*blog.AdminPost, error) {
	created, err := s.manager.CreatePost(ctx, post.ToModel())
	return created, s.newError(ctx, err)
}

// Preview builds the post Create would store without storing it.
//
//zenrpc:post post fields
//zenrpc:return full post
//zenrpc:400 invalid input
//zenrpc:500 internal server error
func (s *PostService) Preview(ctx context.Context, post PostInput) (*Post, error) {
	preview, err := s.manager.PreviewPost(ctx, post.ToModel())
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return newPostPtr(preview), nil
}

// Update merges the given fields onto the post.
//
//zenrpc:id post id
//zenrpc:post changed fields
//zenrpc:return updated post
//zenrpc:400 invalid input
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Update(ctx context.Context, id int, post PostInput) (*blog.AdminPost, error) {
	p, err := s.manager.UpdatePost(ctx, id, post.ToModel())
	return s.found(ctx, p, err)
}

// Delete removes a post.
//
//zenrpc:id post id
//zenrpc:return true when deleted
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.manager.DeletePost(ctx, id)
	if err != nil {
		return false, s.newError(ctx, err)
	} else if !ok {
		return false, errPostNotFound
	}
	return true, nil
}

// Archive sets the post status to archived.
//
//zenrpc:id post id
//zenrpc:return archived post
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Archive(ctx context.Context, id int) (*blog.AdminPost, error) {
	p, err := s.manager.ArchivePost(ctx, id)
	return s.found(ctx, p, err)
}

// Duplicate appends a draft copy of the post.
//
//zenrpc:id post id
//zenrpc:return copy
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Duplicate(ctx context.Context, id int) (*blog.AdminPost, error) {
	p, err := s.manager.DuplicatePost(ctx, id)
	return s.found(ctx, p, err)
}

// Schedule schedules the post, by default for tomorrow at 10:00.
//
//zenrpc:id post id
//zenrpc:scheduledAt publication time, must not be in the past
//zenrpc:return scheduled post
//zenrpc:400 time in the past
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Schedule(ctx context.Context, id int, scheduledAt *time.Time) (*blog.AdminPost, error) {
	p, err := s.manager.SchedulePost(ctx, id, scheduledAt)
	return s.found(ctx, p, err)
}

// Bulk applies publish, draft, archive or delete to every id.
//
//zenrpc:ids post ids
//zenrpc:action publish, draft, archive or delete
//zenrpc:return affected and missing ids
//zenrpc:400 unknown action
//zenrpc:500 internal server error
func (s *PostService) Bulk(ctx context.Context, ids []int, action string) (*blog.BulkResult, error) {
	res, err := s.manager.BulkUpdatePosts(ctx, ids, blog.PostAction(action))
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return res, nil
}

func (s *PostService) found(ctx context.Context, post *blog.AdminPost, err error) (*blog.AdminPost, error) {
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if post == nil {
		return nil, errPostNotFound
	}
	return post, nil
}
