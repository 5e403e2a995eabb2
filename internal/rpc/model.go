package rpc

import (
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
)

// PostSummary is a published post without its body, used in lists.
type PostSummary struct {
	ID               int              `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	Excerpt          string           `json:"excerpt"`
	FeaturedImageURL string           `json:"featuredImageUrl"`
	Author           blog.Author      `json:"author"`
	Category         blog.CategoryRef `json:"category"`
	Tags             []blog.Tag       `json:"tags"`
	PublishedAt      *time.Time       `json:"publishedAt"`
	ReadingTime      int              `json:"readingTime"`
	Views            int              `json:"views"`
	CommentsCount    int              `json:"commentsCount"`
}

type Post struct {
	PostSummary
	Content         string `json:"content"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

type CategoryPage struct {
	Category blog.Category `json:"category"`
	Posts    PostSummaries `json:"posts"`
}

type ListFilter struct {
	//search free text
	Search string `json:"search,omitempty"`
	//status select filter, "all" disables it
	Status string `json:"status,omitempty"`
	//category category display name for posts
	Category string `json:"category,omitempty"`
	//sort=newest sort key
	Sort string `json:"sort,omitempty"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//pageSize=0 items per page, 0 returns everything
	PageSize int `json:"pageSize,omitempty"`
}

func (f ListFilter) ToModel() listing.Query {
	return listing.Query{
		Search: f.Search,
		Filters: map[string]string{
			"status":   f.Status,
			"category": f.Category,
		},
		Sort: f.Sort,
	}
}

type AdminPostList struct {
	Items []blog.AdminPost `json:"items"`
	Total int              `json:"total"`
}

type CategoryList struct {
	Items []blog.Category `json:"items"`
	Total int             `json:"total"`
}

type PostInput struct {
	Title           *string    `json:"title,omitempty"`
	Slug            *string    `json:"slug,omitempty"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Content         *string    `json:"content,omitempty"`
	ContentMarkdown *string    `json:"contentMarkdown,omitempty"`
	FeaturedImage   *string    `json:"featuredImage,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Status          *string    `json:"status,omitempty"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
}

func (in PostInput) ToModel() blog.PostInput {
	out := blog.PostInput{
		Title:           in.Title,
		Slug:            in.Slug,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		ContentMarkdown: in.ContentMarkdown,
		FeaturedImage:   in.FeaturedImage,
		Category:        in.Category,
		Tags:            in.Tags,
		ScheduledAt:     in.ScheduledAt,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}
	if in.Status != nil {
		status := blog.Status(*in.Status)
		out.Status = &status
	}
	return out
}

type CategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (in CategoryInput) ToModel() blog.CategoryInput {
	return blog.CategoryInput{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Color:       in.Color,
		IsActive:    in.IsActive,
	}
}
