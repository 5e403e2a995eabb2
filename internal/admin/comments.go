package admin

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
)

func byCommentCreated(a, b Comment) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

var CommentListing = listing.Spec[Comment]{
	Search: func(c Comment) []string { return []string{c.Content, c.Author.Name, c.Author.Email} },
	Filters: map[string]func(Comment, string) bool{
		"status": listing.Equal(func(c Comment) string { return string(c.Status) }),
		"post":   listing.Equal(func(c Comment) string { return c.Post.Slug }),
	},
	Sorts: map[string]func(a, b Comment) int{
		"newest": listing.Desc(byCommentCreated),
		"oldest": byCommentCreated,
		"author": func(a, b Comment) int { return listing.CompareText(a.Author.Name, b.Author.Name) },
	},
	DefaultSort: listing.SortNewest,
}

var replyAuthor = CommentAuthor{Name: "Admin", Email: "admin@blogcraft.local"}

// Comments is the moderation queue.
type Comments struct {
	mu       sync.RWMutex
	comments []Comment
	log      *slog.Logger
	now      func() time.Time
}

func NewComments(seed []Comment, logger *slog.Logger, now func() time.Time) *Comments {
	return &Comments{comments: slices.Clone(seed), log: logger, now: now}
}

func (c *Comments) List(q listing.Query) []Comment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return listing.Apply(c.comments, CommentListing, q)
}

func (c *Comments) ByID(id int) *Comment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.index(id); i >= 0 {
		comment := c.comments[i]
		return &comment
	}
	return nil
}

// Moderate approves, rejects or flags a comment as spam. ModerationDelete is
// only accepted by Bulk.
func (c *Comments) Moderate(id int, action Moderation) (*Comment, error) {
	status, ok := moderationStatus[action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown moderation %q", blog.ErrValidation, action)
	}

	return c.modify(id, func(comment *Comment) {
		comment.Status = status
	}), nil
}

func (c *Comments) Edit(id int, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", blog.ErrValidation)
	}

	return c.modify(id, func(comment *Comment) {
		comment.Content = content
	}), nil
}

// Reply posts an approved admin comment on the same post as the comment
// being answered. It returns nil when that comment does not exist.
func (c *Comments) Reply(id int, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: reply content is required", blog.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return nil, nil
	}

	maxID := 0
	for j := range c.comments {
		maxID = max(maxID, c.comments[j].ID)
	}

	replyTo := id
	reply := Comment{
		ID:        maxID + 1,
		Content:   content,
		Author:    replyAuthor,
		Post:      c.comments[i].Post,
		Status:    CommentApproved,
		CreatedAt: c.now(),
		ReplyTo:   &replyTo,
	}
	c.comments = append(c.comments, reply)

	c.log.Info("comment reply added", "id", reply.ID, "replyTo", id)
	return &reply, nil
}

func (c *Comments) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return false
	}
	c.comments = slices.Delete(c.comments, i, i+1)
	c.log.Info("comment deleted", "id", id)
	return true
}

func (c *Comments) Bulk(ids []int, action Moderation) (*blog.BulkResult, error) {
	status, known := moderationStatus[action]
	if !known && action != ModerationDelete {
		return nil, fmt.Errorf("%w: unknown moderation %q", blog.ErrValidation, action)
	}

	res := &blog.BulkResult{Affected: []int{}, Missing: []int{}}
	for _, id := range ids {
		var ok bool
		if action == ModerationDelete {
			ok = c.Delete(id)
		} else {
			ok = c.modify(id, func(comment *Comment) {
				comment.Status = status
			}) != nil
		}

		if ok {
			res.Affected = append(res.Affected, id)
		} else {
			res.Missing = append(res.Missing, id)
		}
	}
	return res, nil
}

func (c *Comments) Stats() CommentStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := CommentStats{Total: len(c.comments)}
	for _, comment := range c.comments {
		switch comment.Status {
		case CommentPending:
			stats.Pending++
		case CommentApproved:
			stats.Approved++
		case CommentSpam:
			stats.Spam++
		}
	}
	return stats
}

func (c *Comments) modify(id int, fn func(*Comment)) *Comment {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return nil
	}
	fn(&c.comments[i])

	c.log.Info("comment updated", "id", id, "status", c.comments[i].Status)
	out := c.comments[i]
	return &out
}

func (c *Comments) index(id int) int {
	return slices.IndexFunc(c.comments, func(comment Comment) bool { return comment.ID == id })
}
