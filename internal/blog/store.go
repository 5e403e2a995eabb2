package blog

import "context"

// Placement decides where a new post lands in store order. Store order is
// what "featured" and the unsorted public lists follow.
type Placement int

const (
	PlaceFront Placement = iota
	PlaceBack
)

// Store keeps posts and categories in a stable order. Lookups return
// (nil, nil) when the id is unknown. Insert builders receive the assigned
// id, which is always max(existing)+1.
type Store interface {
	Posts(ctx context.Context) ([]Post, error)
	PostByID(ctx context.Context, id int) (*Post, error)
	InsertPost(ctx context.Context, place Placement, build func(id int) Post) (*Post, error)
	ModifyPost(ctx context.Context, id int, fn func(p *Post)) (*Post, error)
	DeletePost(ctx context.Context, id int) (bool, error)

	Categories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, id int) (*Category, error)
	InsertCategory(ctx context.Context, build func(id int) Category) (*Category, error)
	ModifyCategory(ctx context.Context, id int, fn func(c *Category)) (*Category, error)
	DeleteCategory(ctx context.Context, id int) (bool, error)
}
