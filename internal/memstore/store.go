// Package memstore keeps posts and categories in process memory. It is the
// default backend and loses everything on restart.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/daniilsolovey/blogcraft/internal/blog"
)

var _ blog.Store = (*Store)(nil)

// Store is safe for concurrent use. Values go in and out as copies, so
// callers never share memory with the store.
type Store struct {
	mu         sync.RWMutex
	posts      blog.Posts
	categories blog.Categories
}

func New(posts []blog.Post, categories []blog.Category) *Store {
	s := &Store{
		posts:      make(blog.Posts, 0, len(posts)),
		categories: slices.Clone(categories),
	}
	for i := range posts {
		s.posts = append(s.posts, blog.ClonePost(posts[i]))
	}
	if s.categories == nil {
		s.categories = blog.Categories{}
	}
	return s
}

// NewSeeded returns a store holding the demo data set.
func NewSeeded() *Store {
	return New(blog.SeedPosts(), blog.SeedCategories())
}

func (s *Store) Posts(_ context.Context) ([]blog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]blog.Post, len(s.posts))
	for i := range s.posts {
		out[i] = blog.ClonePost(s.posts[i])
	}
	return out, nil
}

func (s *Store) PostByID(_ context.Context, id int) (*blog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.postIndex(id)
	if i < 0 {
		return nil, nil
	}
	p := blog.ClonePost(s.posts[i])
	return &p, nil
}

func (s *Store) InsertPost(_ context.Context, place blog.Placement, build func(id int) blog.Post) (*blog.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := blog.ClonePost(build(s.posts.MaxID() + 1))
	if place == blog.PlaceFront {
		s.posts = slices.Insert(s.posts, 0, p)
	} else {
		s.posts = append(s.posts, p)
	}

	out := blog.ClonePost(p)
	return &out, nil
}

func (s *Store) ModifyPost(_ context.Context, id int, fn func(p *blog.Post)) (*blog.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return nil, nil
	}

	p := blog.ClonePost(s.posts[i])
	fn(&p)
	p.ID = id
	s.posts[i] = p

	out := blog.ClonePost(p)
	return &out, nil
}

func (s *Store) DeletePost(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return false, nil
	}
	s.posts = slices.Delete(s.posts, i, i+1)
	return true, nil
}

func (s *Store) Categories(_ context.Context) ([]blog.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.categories), nil
}

func (s *Store) CategoryByID(_ context.Context, id int) (*blog.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return nil, nil
	}
	c := s.categories[i]
	return &c, nil
}

func (s *Store) InsertCategory(_ context.Context, build func(id int) blog.Category) (*blog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := build(s.categories.MaxID() + 1)
	s.categories = append(s.categories, c)
	return &c, nil
}

func (s *Store) ModifyCategory(_ context.Context, id int, fn func(c *blog.Category)) (*blog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return nil, nil
	}

	c := s.categories[i]
	fn(&c)
	c.ID = id
	s.categories[i] = c
	return &c, nil
}

func (s *Store) DeleteCategory(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return false, nil
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	return true, nil
}

func (s *Store) postIndex(id int) int {
	return slices.IndexFunc(s.posts, func(p blog.Post) bool { return p.ID == id })
}

func (s *Store) categoryIndex(id int) int {
	return slices.IndexFunc(s.categories, func(c blog.Category) bool { return c.ID == id })
}
