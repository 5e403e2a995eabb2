package rpc

import "github.com/daniilsolovey/blogcraft/internal/blog"

type PostSummaries []PostSummary

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		FeaturedImageURL: p.FeaturedImageURL,
		Author:           p.Author,
		Category:         p.Category,
		Tags:             p.Tags,
		PublishedAt:      p.PublishedAt,
		ReadingTime:      p.ReadingTime,
		Views:            p.Views,
		CommentsCount:    p.CommentsCount,
	}
}

func NewPostSummaries(list []blog.Post) PostSummaries {
	out := make(PostSummaries, len(list))
	for i := range list {
		out[i] = NewPostSummary(list[i])
	}
	return out
}

func NewPost(p blog.Post) Post {
	return Post{
		PostSummary:     NewPostSummary(p),
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
	}
}

// newPostPtr converts a lookup result, keeping nil as nil.
func newPostPtr(p *blog.Post) *Post {
	if p == nil {
		return nil
	}
	post := NewPost(*p)
	return &post
}
