package admin

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
	RoleReader Role = "reader"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleAuthor, RoleReader:
		return true
	}
	return false
}

// Contributor reports whether the role can write posts.
func (r Role) Contributor() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleAuthor
}

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

type User struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	JoinDate   string     `json:"joinDate"`
	LastLogin  *string    `json:"lastLogin"`
	PostsCount int        `json:"postsCount"`
	Avatar     *string    `json:"avatar"`
}

type UserInput struct {
	Name   *string
	Email  *string
	Role   *Role
	Status *UserStatus
}

type UserStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Contributors int `json:"contributors"`
}

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
	CommentSpam     CommentStatus = "spam"
)

// Moderation is an action taken on a comment from the moderation queue.
type Moderation string

const (
	ModerationApprove Moderation = "approve"
	ModerationReject  Moderation = "reject"
	ModerationSpam    Moderation = "spam"
	ModerationDelete  Moderation = "delete"
)

var moderationStatus = map[Moderation]CommentStatus{
	ModerationApprove: CommentApproved,
	ModerationReject:  CommentRejected,
	ModerationSpam:    CommentSpam,
}

type CommentAuthor struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar"`
}

type CommentPost struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type Comment struct {
	ID        int           `json:"id"`
	Content   string        `json:"content"`
	Author    CommentAuthor `json:"author"`
	Post      CommentPost   `json:"post"`
	Status    CommentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	IPAddress string        `json:"ipAddress"`
	UserAgent string        `json:"userAgent"`
	// ReplyTo is set on replies written from the admin.
	ReplyTo *int `json:"replyTo,omitempty"`
}

type CommentStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Spam     int `json:"spam"`
}

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaAudio    MediaType = "audio"
	MediaDocument MediaType = "document"
)

type MediaFile struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Type         MediaType `json:"type"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedBy   string    `json:"uploadedBy"`
	Folder       string    `json:"folder"`
	Alt          string    `json:"alt"`
	Caption      string    `json:"caption"`
	Tags         []string  `json:"tags"`
	UsageCount   int       `json:"usageCount"`
	IsFavorite   bool      `json:"isFavorite"`
}

// MediaInput edits file metadata. A nil Tags slice keeps the current tags.
type MediaInput struct {
	Alt     *string
	Caption *string
	Folder  *string
	Tags    []string
}

type Folder struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type MediaStats struct {
	Total     int   `json:"total"`
	Images    int   `json:"images"`
	Videos    int   `json:"videos"`
	TotalSize int64 `json:"totalSize"`
}
