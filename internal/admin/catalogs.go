package admin

import (
	"log/slog"
	"time"
)

// Catalogs groups the admin-only collections served next to the blog.
type Catalogs struct {
	Users    *Users
	Comments *Comments
	Media    *Media
}

// NewSeededCatalogs loads the demo users, comments and media.
func NewSeededCatalogs(logger *slog.Logger, now func() time.Time) *Catalogs {
	return &Catalogs{
		Users:    NewUsers(SeedUsers(), logger, now),
		Comments: NewComments(SeedComments(), logger, now),
		Media:    NewMedia(SeedMedia(), logger),
	}
}

// NewCatalogs returns empty catalogs.
func NewCatalogs(logger *slog.Logger, now func() time.Time) *Catalogs {
	return &Catalogs{
		Users:    NewUsers(nil, logger, now),
		Comments: NewComments(nil, logger, now),
		Media:    NewMedia(nil, logger),
	}
}
