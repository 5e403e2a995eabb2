package blog

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

const wordsPerMinute = 200

var (
	nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)
	spaceRun   = regexp.MustCompile(`\s+`)
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	nameSep    = regexp.MustCompile(`[-_]`)
	wordStart  = regexp.MustCompile(`\b\w`)

	markdown = goldmark.New()
)

var categoryNames = map[string]string{
	"match-reports":  "Match Reports",
	"transfers":      "Transfers",
	"training":       "Training",
	"programming":    "Programming",
	"development":    "Development",
	"design":         "Design",
	"youth":          "Youth Academy",
	"infrastructure": "Infrastructure",
	"community":      "Community",
}

// GenerateSlug lowercases s and collapses every run of characters outside
// [a-z0-9] into a single hyphen, trimming hyphens at both ends.
func GenerateSlug(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// TagSlug only folds whitespace, so punctuation survives in tag slugs.
func TagSlug(name string) string {
	return spaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

func NewTags(names []string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, Tag{Name: name, Slug: TagSlug(name)})
	}
	return tags
}

// FormatCategoryName turns a category slug into a display name. Only the
// first letter of each word is raised; the rest keeps its case.
func FormatCategoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return wordStart.ReplaceAllStringFunc(nameSep.ReplaceAllString(slug, " "), strings.ToUpper)
}

// ReadingTime estimates minutes to read an HTML body at 200 words per
// minute, rounded up. An empty body still reads as one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(htmlTag.ReplaceAllString(content, "")))
	if words == 0 {
		words = 1
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
