package db

import (
	"github.com/daniilsolovey/blogcraft/internal/blog"
)

func NewPost(p blog.Post, position int) *Post {
	tags := make([]PostTag, len(p.Tags))
	for i := range p.Tags {
		tags[i] = PostTag{Name: p.Tags[i].Name, Slug: p.Tags[i].Slug}
	}

	return &Post{
		ID:               p.ID,
		Position:         position,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		AuthorName:       p.Author.Name,
		AuthorBio:        p.Author.Bio,
		AuthorAvatar:     p.Author.Avatar,
		CategoryName:     p.Category.Name,
		CategorySlug:     p.Category.Slug,
		Tags:             tags,
		Status:           string(p.Status),
		PublishedAt:      p.PublishedAt,
		ScheduledAt:      p.ScheduledAt,
		UpdatedAt:        p.UpdatedAt,
		Views:            p.Views,
		CommentsCount:    p.CommentsCount,
		ReadingTime:      p.ReadingTime,
		MetaTitle:        p.MetaTitle,
		MetaDescription:  p.MetaDescription,
	}
}

func (p *Post) ToBlog() blog.Post {
	tags := make([]blog.Tag, len(p.Tags))
	for i := range p.Tags {
		tags[i] = blog.Tag{Name: p.Tags[i].Name, Slug: p.Tags[i].Slug}
	}

	return blog.Post{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		Author:           blog.Author{Name: p.AuthorName, Bio: p.AuthorBio, Avatar: p.AuthorAvatar},
		Category:         blog.CategoryRef{Name: p.CategoryName, Slug: p.CategorySlug},
		Tags:             tags,
		Status:           blog.Status(p.Status),
		PublishedAt:      p.PublishedAt,
		ScheduledAt:      p.ScheduledAt,
		UpdatedAt:        p.UpdatedAt,
		Views:            p.Views,
		CommentsCount:    p.CommentsCount,
		ReadingTime:      p.ReadingTime,
		MetaTitle:        p.MetaTitle,
		MetaDescription:  p.MetaDescription,
	}
}

func NewCategory(c blog.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		PostsCount:  c.PostsCount,
		Color:       c.Color,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (c *Category) ToBlog() blog.Category {
	return blog.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		PostsCount:  c.PostsCount,
		Color:       c.Color,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func postsToBlog(pp []Post) []blog.Post {
	out := make([]blog.Post, len(pp))
	for i := range pp {
		out[i] = pp[i].ToBlog()
	}
	return out
}

func categoriesToBlog(cc []Category) []blog.Category {
	out := make([]blog.Category, len(cc))
	for i := range cc {
		out[i] = cc[i].ToBlog()
	}
	return out
}
