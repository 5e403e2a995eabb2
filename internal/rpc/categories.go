package rpc

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
	"github.com/vmkteam/zenrpc/v2"
)

type CategoryService struct {
	zenrpc.Service
	errorMapper
	manager *blog.Manager
}

func NewCategoryService(manager *blog.Manager, logger *slog.Logger) *CategoryService {
	return &CategoryService{errorMapper: errorMapper{log: logger}, manager: manager}
}

var errCategoryNotFound = zenrpc.NewStringError(404, "category not found")

// List returns the admin categories table with the unpaged total.
//
//zenrpc:filter search, status filter, sort and paging
//zenrpc:return page of categories and total
//zenrpc:500 internal server error
func (s *CategoryService) List(ctx context.Context, filter ListFilter) (*CategoryList, error) {
	categories, err := s.manager.AllCategories(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	matched := listing.Apply(categories, blog.CategoryListing, filter.ToModel())
	return &CategoryList{
		Items: listing.Page(matched, filter.Page, filter.PageSize),
		Total: len(matched),
	}, nil
}

// Get returns a category by id.
//
//zenrpc:id category id
//zenrpc:return category
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) Get(ctx context.Context, id int) (*blog.Category, error) {
	c, err := s.manager.CategoryByID(ctx, id)
	return s.found(ctx, c, err)
}

// Create appends a category.
//
//zenrpc:category category fields, name is required
//zenrpc:return created category
//zenrpc:400 invalid input
//zenrpc:500 internal server error
func (s *CategoryService) Create(ctx context.Context, category CategoryInput) (*blog.Category, error) {
	created, err := s.manager.CreateCategory(ctx, category.ToModel())
	return created, s.newError(ctx, err)
}

// Update merges the given fields onto the category.
//
//zenrpc:id category id
//zenrpc:category changed fields
//zenrpc:return updated category
//zenrpc:400 invalid input
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) Update(ctx context.Context, id int, category CategoryInput) (*blog.Category, error) {
	c, err := s.manager.UpdateCategory(ctx, id, category.ToModel())
	return s.found(ctx, c, err)
}

// Delete removes a category. Posts keep their category snapshot.
//
//zenrpc:id category id
//zenrpc:return true when deleted
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.manager.DeleteCategory(ctx, id)
	if err != nil {
		return false, s.newError(ctx, err)
	} else if !ok {
		return false, errCategoryNotFound
	}
	return true, nil
}

// Duplicate appends a copy of the category.
//
//zenrpc:id category id
//zenrpc:return copy
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) Duplicate(ctx context.Context, id int) (*blog.Category, error) {
	c, err := s.manager.DuplicateCategory(ctx, id)
	return s.found(ctx, c, err)
}

// Toggle flips isActive.
//
//zenrpc:id category id
//zenrpc:return toggled category
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) Toggle(ctx context.Context, id int) (*blog.Category, error) {
	c, err := s.manager.ToggleCategoryStatus(ctx, id)
	return s.found(ctx, c, err)
}

// Bulk applies activate, deactivate or delete to every id.
//
//zenrpc:ids category ids
//zenrpc:action activate, deactivate or delete
//zenrpc:return affected and missing ids
//zenrpc:400 unknown action
//zenrpc:500 internal server error
func (s *CategoryService) Bulk(ctx context.Context, ids []int, action string) (*blog.BulkResult, error) {
	res, err := s.manager.BulkUpdateCategories(ctx, ids, blog.CategoryAction(action))
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return res, nil
}

// Recount rewrites postsCount from the posts referencing each category.
//
//zenrpc:return recounted categories
//zenrpc:500 internal server error
func (s *CategoryService) Recount(ctx context.Context) ([]blog.Category, error) {
	categories, err := s.manager.RecountCategoryPosts(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}
	return categories, nil
}

func (s *CategoryService) found(ctx context.Context, c *blog.Category, err error) (*blog.Category, error) {
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if c == nil {
		return nil, errCategoryNotFound
	}
	return c, nil
}
