package admin

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
)

func byUploadedAt(a, b MediaFile) int {
	return a.UploadedAt.Compare(b.UploadedAt)
}

var MediaListing = listing.Spec[MediaFile]{
	Search: func(f MediaFile) []string {
		return append([]string{f.Name, f.OriginalName}, f.Tags...)
	},
	Filters: map[string]func(MediaFile, string) bool{
		"type":   listing.Equal(func(f MediaFile) string { return string(f.Type) }),
		"folder": listing.Equal(func(f MediaFile) string { return f.Folder }),
	},
	Sorts: map[string]func(a, b MediaFile) int{
		"newest": listing.Desc(byUploadedAt),
		"oldest": byUploadedAt,
		"name":   func(a, b MediaFile) int { return listing.CompareText(a.Name, b.Name) },
		"size":   func(a, b MediaFile) int { return cmp.Compare(b.Size, a.Size) },
		"usage":  func(a, b MediaFile) int { return cmp.Compare(b.UsageCount, a.UsageCount) },
	},
	DefaultSort: listing.SortNewest,
}

// Media is the media library. Uploads are out of scope, files only come
// from the seed.
type Media struct {
	mu    sync.RWMutex
	files []MediaFile
	log   *slog.Logger
}

func NewMedia(seed []MediaFile, logger *slog.Logger) *Media {
	files := make([]MediaFile, len(seed))
	for i := range seed {
		files[i] = cloneFile(seed[i])
	}
	return &Media{files: files, log: logger}
}

func (m *Media) List(q listing.Query) []MediaFile {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := listing.Apply(m.files, MediaListing, q)
	for i := range out {
		out[i] = cloneFile(out[i])
	}
	return out
}

func (m *Media) ByID(id int) *MediaFile {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.index(id); i >= 0 {
		f := cloneFile(m.files[i])
		return &f
	}
	return nil
}

func (m *Media) Update(id int, in MediaInput) (*MediaFile, error) {
	if in.Folder != nil && blog.GenerateSlug(*in.Folder) != *in.Folder {
		return nil, fmt.Errorf("%w: folder %q is not url-safe", blog.ErrValidation, *in.Folder)
	}

	return m.modify(id, func(f *MediaFile) {
		if in.Alt != nil {
			f.Alt = *in.Alt
		}
		if in.Caption != nil {
			f.Caption = *in.Caption
		}
		if in.Folder != nil {
			f.Folder = *in.Folder
		}
		if in.Tags != nil {
			f.Tags = normalizeTags(in.Tags)
		}
	}), nil
}

func (m *Media) ToggleFavorite(id int) *MediaFile {
	return m.modify(id, func(f *MediaFile) {
		f.IsFavorite = !f.IsFavorite
	})
}

func (m *Media) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return false
	}
	m.files = slices.Delete(m.files, i, i+1)
	m.log.Info("media file deleted", "id", id)
	return true
}

func (m *Media) BulkDelete(ids []int) *blog.BulkResult {
	res := &blog.BulkResult{Affected: []int{}, Missing: []int{}}
	for _, id := range ids {
		if m.Delete(id) {
			res.Affected = append(res.Affected, id)
		} else {
			res.Missing = append(res.Missing, id)
		}
	}
	return res
}

// Folders lists every folder in use with its file count, sorted by name.
func (m *Media) Folders() []Folder {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int)
	for _, f := range m.files {
		counts[f.Folder]++
	}

	folders := make([]Folder, 0, len(counts))
	for name, count := range counts {
		color, ok := folderColors[name]
		if !ok {
			color = defaultFolderColor
		}
		folders = append(folders, Folder{Name: name, Color: color, Count: count})
	}
	slices.SortFunc(folders, func(a, b Folder) int { return strings.Compare(a.Name, b.Name) })
	return folders
}

func (m *Media) Stats() MediaStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := MediaStats{Total: len(m.files)}
	for _, f := range m.files {
		stats.TotalSize += f.Size
		switch f.Type {
		case MediaImage:
			stats.Images++
		case MediaVideo:
			stats.Videos++
		}
	}
	return stats
}

func (m *Media) modify(id int, fn func(*MediaFile)) *MediaFile {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return nil
	}
	fn(&m.files[i])

	m.log.Info("media file updated", "id", id)
	f := cloneFile(m.files[i])
	return &f
}

func (m *Media) index(id int) int {
	return slices.IndexFunc(m.files, func(f MediaFile) bool { return f.ID == id })
}

func cloneFile(f MediaFile) MediaFile {
	f.Tags = slices.Clone(f.Tags)
	return f
}

// normalizeTags lowercases, trims and drops empty or repeated tags.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
