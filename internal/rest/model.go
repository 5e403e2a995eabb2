package rest

import (
	"time"

	"github.com/daniilsolovey/blogcraft/internal/admin"
	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
)

// ListRequest is the query string of every admin table. Filters a table
// does not know are ignored.
type ListRequest struct {
	Search   string
	Status   string
	Category string
	Role     string
	Type     string
	Folder   string
	Post     string
	Sort     string
	Page     int
	Limit    int
}

func (r ListRequest) ToModel() listing.Query {
	return listing.Query{
		Search: r.Search,
		Filters: map[string]string{
			"status":   r.Status,
			"category": r.Category,
			"role":     r.Role,
			"type":     r.Type,
			"folder":   r.Folder,
			"post":     r.Post,
		},
		Sort: r.Sort,
	}
}

// PostRequest is the editor form. Omitted fields keep their default on
// create and their current value on update; "tags": [] clears the tags.
type PostRequest struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         *string    `json:"content"`
	ContentMarkdown *string    `json:"contentMarkdown"`
	FeaturedImage   *string    `json:"featuredImage"`
	Category        *string    `json:"category"`
	Tags            []string   `json:"tags"`
	Status          *string    `json:"status"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
}

func (r PostRequest) ToModel() blog.PostInput {
	in := blog.PostInput{
		Title:           r.Title,
		Slug:            r.Slug,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		ContentMarkdown: r.ContentMarkdown,
		FeaturedImage:   r.FeaturedImage,
		Category:        r.Category,
		Tags:            r.Tags,
		ScheduledAt:     r.ScheduledAt,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
	}
	if r.Status != nil {
		status := blog.Status(*r.Status)
		in.Status = &status
	}
	return in
}

type ScheduleRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt"`
}

type BulkRequest struct {
	IDs    []int  `json:"ids"`
	Action string `json:"action"`
}

type CategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

func (r CategoryRequest) ToModel() blog.CategoryInput {
	return blog.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Color:       r.Color,
		IsActive:    r.IsActive,
	}
}

type UserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func (r UserRequest) ToModel() admin.UserInput {
	in := admin.UserInput{Name: r.Name, Email: r.Email}
	if r.Role != nil {
		role := admin.Role(*r.Role)
		in.Role = &role
	}
	if r.Status != nil {
		status := admin.UserStatus(*r.Status)
		in.Status = &status
	}
	return in
}

type ModerateRequest struct {
	Action string `json:"action"`
}

type CommentContentRequest struct {
	Content string `json:"content"`
}

type MediaRequest struct {
	Alt     *string  `json:"alt"`
	Caption *string  `json:"caption"`
	Folder  *string  `json:"folder"`
	Tags    []string `json:"tags"`
}

func (r MediaRequest) ToModel() admin.MediaInput {
	return admin.MediaInput{
		Alt:     r.Alt,
		Caption: r.Caption,
		Folder:  r.Folder,
		Tags:    r.Tags,
	}
}

type IDsRequest struct {
	IDs []int `json:"ids"`
}

// CategoryPage is a category together with its published posts.
type CategoryPage struct {
	Category blog.Category `json:"category"`
	Posts    []blog.Post   `json:"posts"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
