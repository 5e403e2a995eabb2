package blog

import (
	"errors"
	"time"
)

// ErrValidation marks input rejected before it reaches the store.
var ErrValidation = errors.New("validation failed")

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled, StatusArchived:
		return true
	}
	return false
}

type Author struct {
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Avatar *string `json:"avatar"`
}

// CategoryRef is the category snapshot stored on a post. It is not a
// foreign key: renaming or deleting a category leaves posts untouched.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Post is the full shape used by the public blog and the editor.
type Post struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Excerpt          string      `json:"excerpt"`
	Content          string      `json:"content"`
	FeaturedImageURL string      `json:"featuredImageUrl"`
	Author           Author      `json:"author"`
	Category         CategoryRef `json:"category"`
	Tags             []Tag       `json:"tags"`
	Status           Status      `json:"status"`
	PublishedAt      *time.Time  `json:"publishedAt"`
	ScheduledAt      *time.Time  `json:"scheduledAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	Views            int         `json:"views"`
	CommentsCount    int         `json:"commentsCount"`
	ReadingTime      int         `json:"readingTime"`
	MetaTitle        string      `json:"metaTitle"`
	MetaDescription  string      `json:"metaDescription"`
}

// AdminPost is the flattened row shown in the admin posts table.
type AdminPost struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Author      string   `json:"author"`
	Status      Status   `json:"status"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	PublishDate *string  `json:"publishDate"`
	Views       int      `json:"views"`
	Comments    int      `json:"comments"`
}

// PostInput carries editor data. Nil fields are absent and keep their
// defaults on create or their current value on update. A nil Tags slice is
// absent, an empty one clears the tags.
type PostInput struct {
	Title           *string
	Slug            *string
	Excerpt         *string
	Content         *string
	ContentMarkdown *string
	FeaturedImage   *string
	Category        *string
	Tags            []string
	Status          *Status
	ScheduledAt     *time.Time
	MetaTitle       *string
	MetaDescription *string
}

type PostAction string

const (
	PostActionPublish PostAction = "publish"
	PostActionDraft   PostAction = "draft"
	PostActionArchive PostAction = "archive"
	PostActionDelete  PostAction = "delete"
)

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PostsCount  int       `json:"postsCount"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
	Color       *string
	IsActive    *bool
}

type CategoryAction string

const (
	CategoryActionActivate   CategoryAction = "activate"
	CategoryActionDeactivate CategoryAction = "deactivate"
	CategoryActionDelete     CategoryAction = "delete"
)

// PublicCategory is an active category with its live published post count.
type PublicCategory struct {
	Category
	PublishedCount int `json:"publishedCount"`
}

// BulkResult lists which ids an action touched and which were not found.
type BulkResult struct {
	Affected []int `json:"affected"`
	Missing  []int `json:"missing"`
}
