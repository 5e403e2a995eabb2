package blog

import (
	"context"
	"fmt"
	"regexp"
)

const defaultCategoryColor = "#2563eb"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (m *Manager) AllCategories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("store get categories: %w", err)
	}
	return list, nil
}

func (m *Manager) ActiveCategories(ctx context.Context) ([]Category, error) {
	list, err := m.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(list).Active(), nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	list, err := m.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Slug == slug {
			return &list[i], nil
		}
	}
	return nil, nil
}

func (m *Manager) CategoryByID(ctx context.Context, id int) (*Category, error) {
	c, err := m.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get category by id: %w", err)
	}
	return c, nil
}

// PublicCategories returns active categories with the number of published
// posts that currently reference them.
func (m *Manager) PublicCategories(ctx context.Context) ([]PublicCategory, error) {
	cats, err := m.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := m.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	counts := Posts(posts).CountByCategorySlug()
	out := make([]PublicCategory, len(cats))
	for i := range cats {
		out[i] = PublicCategory{Category: cats[i], PublishedCount: counts[cats[i].Slug]}
	}
	return out, nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	name := value(in.Name, "")
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if err := validateCategoryInput(in); err != nil {
		return nil, err
	}

	slug := value(in.Slug, GenerateSlug(name))
	if slug == "" {
		return nil, fmt.Errorf("%w: category name %q has no slug characters", ErrValidation, name)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := m.now()
	c, err := m.store.InsertCategory(ctx, func(id int) Category {
		return Category{
			ID:          id,
			Name:        name,
			Slug:        slug,
			Description: value(in.Description, ""),
			Color:       value(in.Color, defaultCategoryColor),
			IsActive:    isActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("store insert category: %w", err)
	}

	m.log.Info("category created", "id", c.ID, "slug", c.Slug)
	return c, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, id int, in CategoryInput) (*Category, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	if err := validateCategoryInput(in); err != nil {
		return nil, err
	}

	now := m.now()
	c, err := m.store.ModifyCategory(ctx, id, func(c *Category) {
		c.Name = value(in.Name, c.Name)
		c.Slug = value(in.Slug, c.Slug)
		if in.Description != nil {
			c.Description = *in.Description
		}
		c.Color = value(in.Color, c.Color)
		if in.IsActive != nil {
			c.IsActive = *in.IsActive
		}
		c.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("store update category: %w", err)
	} else if c == nil {
		return nil, nil
	}

	m.log.Info("category updated", "id", id)
	return c, nil
}

// DeleteCategory leaves posts that reference the category as they are.
func (m *Manager) DeleteCategory(ctx context.Context, id int) (bool, error) {
	ok, err := m.store.DeleteCategory(ctx, id)
	if err != nil {
		return false, fmt.Errorf("store delete category: %w", err)
	}
	if ok {
		m.log.Info("category deleted", "id", id)
	}
	return ok, nil
}

func (m *Manager) DuplicateCategory(ctx context.Context, id int) (*Category, error) {
	src, err := m.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get category by id: %w", err)
	} else if src == nil {
		return nil, nil
	}

	now := m.now()
	c, err := m.store.InsertCategory(ctx, func(newID int) Category {
		dup := *src
		dup.ID = newID
		dup.Name = src.Name + " (Copy)"
		dup.Slug = src.Slug + "-copy"
		dup.PostsCount = 0
		dup.CreatedAt = now
		dup.UpdatedAt = now
		return dup
	})
	if err != nil {
		return nil, fmt.Errorf("store insert category: %w", err)
	}

	m.log.Info("category duplicated", "sourceID", id, "id", c.ID)
	return c, nil
}

func (m *Manager) ToggleCategoryStatus(ctx context.Context, id int) (*Category, error) {
	now := m.now()
	c, err := m.store.ModifyCategory(ctx, id, func(c *Category) {
		c.IsActive = !c.IsActive
		c.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("store toggle category: %w", err)
	}
	return c, nil
}

func (m *Manager) BulkUpdateCategories(ctx context.Context, ids []int, action CategoryAction) (*BulkResult, error) {
	var apply func(id int) (bool, error)
	switch action {
	case CategoryActionDelete:
		apply = func(id int) (bool, error) { return m.DeleteCategory(ctx, id) }
	case CategoryActionActivate, CategoryActionDeactivate:
		active := action == CategoryActionActivate
		apply = func(id int) (bool, error) {
			c, err := m.UpdateCategory(ctx, id, CategoryInput{IsActive: &active})
			return c != nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown category action %q", ErrValidation, action)
	}

	return bulk(ids, apply)
}

// RecountCategoryPosts rewrites every stored postsCount from the posts that
// reference the category slug, whatever their status.
func (m *Manager) RecountCategoryPosts(ctx context.Context) ([]Category, error) {
	posts, err := m.posts(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := m.AllCategories(ctx)
	if err != nil {
		return nil, err
	}

	counts := posts.CountByCategorySlug()
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		updated, err := m.store.ModifyCategory(ctx, c.ID, func(c *Category) {
			c.PostsCount = counts[c.Slug]
		})
		if err != nil {
			return nil, fmt.Errorf("store recount category: %w", err)
		} else if updated != nil {
			out = append(out, *updated)
		}
	}

	m.log.Info("category post counts recalculated", "categories", len(out))
	return out, nil
}

func validateCategoryInput(in CategoryInput) error {
	if in.Color != nil && *in.Color != "" && !hexColor.MatchString(*in.Color) {
		return fmt.Errorf("%w: color %q is not a hex color", ErrValidation, *in.Color)
	}
	if in.Slug != nil && *in.Slug != "" && GenerateSlug(*in.Slug) != *in.Slug {
		return fmt.Errorf("%w: slug %q is not url-safe", ErrValidation, *in.Slug)
	}
	return nil
}
