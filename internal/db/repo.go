package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/go-pg/pg/v10"
)

var _ blog.Store = (*Repository)(nil)

// Repository is the postgres blog.Store. Post order lives in the position
// column, so inserting at the front takes min(position)-1.
type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts returns every post in store order.
func (r *Repository) Posts(ctx context.Context) ([]blog.Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		OrderExpr(`"t"."position" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return postsToBlog(posts), nil
}

func (r *Repository) PostByID(ctx context.Context, id int) (*blog.Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."postId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	p := post.ToBlog()
	return &p, nil
}

// InsertPost locks the table so that concurrent inserts cannot take the same
// id or position.
func (r *Repository) InsertPost(ctx context.Context, place blog.Placement, build func(id int) blog.Post) (*blog.Post, error) {
	var out blog.Post
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE "posts" IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock posts: %w", err)
		}

		var maxID, minPos, maxPos int
		_, err := tx.QueryOneContext(ctx, pg.Scan(&maxID, &minPos, &maxPos), `
			SELECT COALESCE(MAX("postId"), 0), COALESCE(MIN("position"), 1), COALESCE(MAX("position"), 0)
			FROM "posts"`)
		if err != nil {
			return fmt.Errorf("query post bounds: %w", err)
		}

		position := maxPos + 1
		if place == blog.PlaceFront {
			position = minPos - 1
		}

		p := build(maxID + 1)
		p.ID = maxID + 1
		if _, err := tx.ModelContext(ctx, NewPost(p, position)).Insert(); err != nil {
			return fmt.Errorf("insert post: %w", err)
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// ModifyPost reads the row FOR UPDATE, applies fn and writes every column
// back. Position is never changed.
func (r *Repository) ModifyPost(ctx context.Context, id int, fn func(p *blog.Post)) (*blog.Post, error) {
	var out *blog.Post
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		row := &Post{}
		err := tx.ModelContext(ctx, row).
			Where(`"t"."postId" = ?`, id).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return nil
		} else if err != nil {
			return fmt.Errorf("select post for update: %w", err)
		}

		p := row.ToBlog()
		fn(&p)
		p.ID = id

		if _, err := tx.ModelContext(ctx, NewPost(p, row.Position)).WherePK().Update(); err != nil {
			return fmt.Errorf("update post: %w", err)
		}

		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) DeletePost(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."postId" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Categories returns categories in id order, which is also insertion order.
func (r *Repository) Categories(ctx context.Context) ([]blog.Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."categoryId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categoriesToBlog(categories), nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*blog.Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	c := category.ToBlog()
	return &c, nil
}

func (r *Repository) InsertCategory(ctx context.Context, build func(id int) blog.Category) (*blog.Category, error) {
	var out blog.Category
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE "categories" IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock categories: %w", err)
		}

		var maxID int
		if _, err := tx.QueryOneContext(ctx, pg.Scan(&maxID), `SELECT COALESCE(MAX("categoryId"), 0) FROM "categories"`); err != nil {
			return fmt.Errorf("query max category id: %w", err)
		}

		c := build(maxID + 1)
		c.ID = maxID + 1
		if _, err := tx.ModelContext(ctx, NewCategory(c)).Insert(); err != nil {
			return fmt.Errorf("insert category: %w", err)
		}

		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *Repository) ModifyCategory(ctx context.Context, id int, fn func(c *blog.Category)) (*blog.Category, error) {
	var out *blog.Category
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		row := &Category{}
		err := tx.ModelContext(ctx, row).
			Where(`"t"."categoryId" = ?`, id).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return nil
		} else if err != nil {
			return fmt.Errorf("select category for update: %w", err)
		}

		c := row.ToBlog()
		fn(&c)
		c.ID = id

		if _, err := tx.ModelContext(ctx, NewCategory(c)).WherePK().Update(); err != nil {
			return fmt.Errorf("update category: %w", err)
		}

		out = &c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."categoryId" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// SeedIfEmpty loads posts and categories into empty tables. Tables that
// already hold rows are left alone.
func (r *Repository) SeedIfEmpty(ctx context.Context, posts []blog.Post, categories []blog.Category) error {
	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		n, err := tx.ModelContext(ctx, (*Category)(nil)).Count()
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if n == 0 {
			for i := range categories {
				if _, err := tx.ModelContext(ctx, NewCategory(categories[i])).Insert(); err != nil {
					return fmt.Errorf("insert category %q: %w", categories[i].Slug, err)
				}
			}
		}

		n, err = tx.ModelContext(ctx, (*Post)(nil)).Count()
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		if n == 0 {
			for i := range posts {
				if _, err := tx.ModelContext(ctx, NewPost(posts[i], i+1)).Insert(); err != nil {
					return fmt.Errorf("insert post %q: %w", posts[i].Slug, err)
				}
			}
		}

		return nil
	})
}
