// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Name, Slug, Description, PostsCount, Color, IsActive, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Post struct {
		ID, Position, Title, Slug, Excerpt, Content, FeaturedImageURL, AuthorName, AuthorBio, AuthorAvatar, CategoryName, CategorySlug, Tags, Status, PublishedAt, ScheduledAt, UpdatedAt, Views, CommentsCount, ReadingTime, MetaTitle, MetaDescription string
	}
}{
	Category: struct {
		ID, Name, Slug, Description, PostsCount, Color, IsActive, CreatedAt, UpdatedAt string
	}{
		ID:          "categoryId",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		PostsCount:  "postsCount",
		Color:       "color",
		IsActive:    "isActive",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Post: struct {
		ID, Position, Title, Slug, Excerpt, Content, FeaturedImageURL, AuthorName, AuthorBio, AuthorAvatar, CategoryName, CategorySlug, Tags, Status, PublishedAt, ScheduledAt, UpdatedAt, Views, CommentsCount, ReadingTime, MetaTitle, MetaDescription string
	}{
		ID:               "postId",
		Position:         "position",
		Title:            "title",
		Slug:             "slug",
		Excerpt:          "excerpt",
		Content:          "content",
		FeaturedImageURL: "featuredImageUrl",
		AuthorName:       "authorName",
		AuthorBio:        "authorBio",
		AuthorAvatar:     "authorAvatar",
		CategoryName:     "categoryName",
		CategorySlug:     "categorySlug",
		Tags:             "tags",
		Status:           "status",
		PublishedAt:      "publishedAt",
		ScheduledAt:      "scheduledAt",
		UpdatedAt:        "updatedAt",
		Views:            "views",
		CommentsCount:    "commentsCount",
		ReadingTime:      "readingTime",
		MetaTitle:        "metaTitle",
		MetaDescription:  "metaDescription",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Name        string    `pg:"name,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Description string    `pg:"description,use_zero"`
	PostsCount  int       `pg:"postsCount,use_zero"`
	Color       string    `pg:"color,use_zero"`
	IsActive    bool      `pg:"isActive,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID               int        `pg:"postId,pk"`
	Position         int        `pg:"position,use_zero"`
	Title            string     `pg:"title,use_zero"`
	Slug             string     `pg:"slug,use_zero"`
	Excerpt          string     `pg:"excerpt,use_zero"`
	Content          string     `pg:"content,use_zero"`
	FeaturedImageURL string     `pg:"featuredImageUrl,use_zero"`
	AuthorName       string     `pg:"authorName,use_zero"`
	AuthorBio        string     `pg:"authorBio,use_zero"`
	AuthorAvatar     *string    `pg:"authorAvatar"`
	CategoryName     string     `pg:"categoryName,use_zero"`
	CategorySlug     string     `pg:"categorySlug,use_zero"`
	Tags             []PostTag  `pg:"tags,type:jsonb,use_zero"`
	Status           string     `pg:"status,use_zero"`
	PublishedAt      *time.Time `pg:"publishedAt"`
	ScheduledAt      *time.Time `pg:"scheduledAt"`
	UpdatedAt        time.Time  `pg:"updatedAt,use_zero"`
	Views            int        `pg:"views,use_zero"`
	CommentsCount    int        `pg:"commentsCount,use_zero"`
	ReadingTime      int        `pg:"readingTime,use_zero"`
	MetaTitle        string     `pg:"metaTitle,use_zero"`
	MetaDescription  string     `pg:"metaDescription,use_zero"`
}

type PostTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
