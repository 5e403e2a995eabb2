package admin

import "time"

func seedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string {
	return &s
}

func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Role: RoleAdmin, Status: UserActive, JoinDate: "2023-08-15", LastLogin: strPtr("2024-01-15"), PostsCount: 24},
		{ID: 2, Name: "Mike Chen", Email: "mike.chen@example.com", Role: RoleEditor, Status: UserActive, JoinDate: "2023-09-20", LastLogin: strPtr("2024-01-14"), PostsCount: 18},
		{ID: 3, Name: "Alex Kumar", Email: "alex.kumar@example.com", Role: RoleAuthor, Status: UserActive, JoinDate: "2023-10-05", LastLogin: strPtr("2024-01-13"), PostsCount: 12},
		{ID: 4, Name: "Emma Wilson", Email: "emma.wilson@example.com", Role: RoleReader, Status: UserInactive, JoinDate: "2023-11-12", LastLogin: strPtr("2023-12-20")},
	}
}

func SeedComments() []Comment {
	championship := CommentPost{Title: "ASA Wins Championship Final Against Wydad", Slug: "asa-wins-championship-final-wydad"}
	signing := CommentPost{Title: "New Signing: Youssef Amrani", Slug: "new-signing-youssef-amrani"}

	return []Comment{
		{
			ID:        1,
			Content:   "Great match! ASA played brilliantly and deserved this victory. The team showed real character in extra time.",
			Author:    CommentAuthor{Name: "Hassan Alami", Email: "hassan@example.com"},
			Post:      championship,
			Status:    CommentPending,
			CreatedAt: seedTime("2024-01-15T14:30:00Z"),
			IPAddress: "192.168.1.100",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
		{
			ID:        2,
			Content:   "Amazing performance! This is why I love ASA. Keep up the great work team!",
			Author:    CommentAuthor{Name: "Fatima Zahra", Email: "fatima@example.com"},
			Post:      championship,
			Status:    CommentApproved,
			CreatedAt: seedTime("2024-01-15T16:45:00Z"),
			IPAddress: "10.0.0.50",
			UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
		},
		{
			ID:        3,
			Content:   "This is spam content with suspicious links and promotional material that should be filtered out.",
			Author:    CommentAuthor{Name: "Spam User", Email: "spam@suspicious.com"},
			Post:      signing,
			Status:    CommentSpam,
			CreatedAt: seedTime("2024-01-14T09:20:00Z"),
			IPAddress: "203.0.113.1",
			UserAgent: "Bot/1.0",
		},
		{
			ID:        4,
			Content:   "Not impressed with this signing. We needed a defender, not another midfielder.",
			Author:    CommentAuthor{Name: "Mohamed Tazi", Email: "mohamed@example.com"},
			Post:      signing,
			Status:    CommentRejected,
			CreatedAt: seedTime("2024-01-14T11:15:00Z"),
			IPAddress: "172.16.0.10",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
		},
	}
}

func SeedMedia() []MediaFile {
	return []MediaFile{
		{
			ID: 1, Name: "asa-championship-celebration.jpg", OriginalName: "Championship Celebration Photo",
			Type: MediaImage, MimeType: "image/jpeg", Size: 2048576,
			URL:          "https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg",
			ThumbnailURL: strPtr("https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg?w=300&h=200&fit=crop"),
			UploadedAt:   seedTime("2024-01-15T10:00:00Z"), UploadedBy: "Ahmed Benali", Folder: "match-photos",
			Alt: "ASA players celebrating championship victory", Caption: "ASA team celebrating their historic championship win",
			Tags: []string{"championship", "celebration", "victory", "team"}, UsageCount: 5, IsFavorite: true,
		},
		{
			ID: 2, Name: "youssef-amrani-signing.jpg", OriginalName: "Youssef Amrani Signing Photo",
			Type: MediaImage, MimeType: "image/jpeg", Size: 1536000,
			URL:          "https://images.pexels.com/photos/1884574/pexels-photo-1884574.jpeg",
			ThumbnailURL: strPtr("https://images.pexels.com/photos/1884574/pexels-photo-1884574.jpeg?w=300&h=200&fit=crop"),
			UploadedAt:   seedTime("2024-01-14T15:30:00Z"), UploadedBy: "Sara Alami", Folder: "transfers",
			Alt: "Youssef Amrani signing contract", Caption: "New midfielder Youssef Amrani signing his contract",
			Tags: []string{"transfer", "signing", "player", "contract"}, UsageCount: 3,
		},
		{
			ID: 3, Name: "training-session-video.mp4", OriginalName: "Training Session Highlights",
			Type: MediaVideo, MimeType: "video/mp4", Size: 15728640,
			URL:          "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
			ThumbnailURL: strPtr("https://images.pexels.com/photos/3621104/pexels-photo-3621104.jpeg?w=300&h=200&fit=crop"),
			UploadedAt:   seedTime("2024-01-13T09:15:00Z"), UploadedBy: "Mohamed Tazi", Folder: "training",
			Alt: "Training session video", Caption: "Highlights from yesterday's training session",
			Tags: []string{"training", "video", "highlights", "preparation"}, UsageCount: 2,
		},
		{
			ID: 4, Name: "stadium-aerial-view.jpg", OriginalName: "Stadium Aerial View",
			Type: MediaImage, MimeType: "image/jpeg", Size: 3145728,
			URL:          "https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg",
			ThumbnailURL: strPtr("https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg?w=300&h=200&fit=crop"),
			UploadedAt:   seedTime("2024-01-12T14:20:00Z"), UploadedBy: "Fatima Zahra", Folder: "infrastructure",
			Alt: "Aerial view of ASA stadium", Caption: "Beautiful aerial shot of our home stadium",
			Tags: []string{"stadium", "aerial", "infrastructure", "home"}, UsageCount: 8, IsFavorite: true,
		},
		{
			ID: 5, Name: "press-conference-audio.mp3", OriginalName: "Post-Match Press Conference",
			Type: MediaAudio, MimeType: "audio/mpeg", Size: 5242880,
			URL:        "#",
			UploadedAt: seedTime("2024-01-11T18:45:00Z"), UploadedBy: "Ahmed Benali", Folder: "press",
			Alt: "Press conference audio recording", Caption: "Coach's post-match press conference",
			Tags: []string{"press", "conference", "audio", "interview"}, UsageCount: 1,
		},
		{
			ID: 6, Name: "match-report-template.pdf", OriginalName: "Match Report Template",
			Type: MediaDocument, MimeType: "application/pdf", Size: 1048576,
			URL:        "#",
			UploadedAt: seedTime("2024-01-10T11:30:00Z"), UploadedBy: "Sara Alami", Folder: "templates",
			Alt: "Match report template document", Caption: "Standard template for match reports",
			Tags: []string{"template", "document", "report", "match"}, UsageCount: 12, IsFavorite: true,
		},
	}
}

// folderColors are the swatches of the known media folders.
var folderColors = map[string]string{
	"match-photos":   "#dc2626",
	"transfers":      "#2563eb",
	"training":       "#16a34a",
	"infrastructure": "#ca8a04",
	"press":          "#7c3aed",
	"templates":      "#ea580c",
}

const defaultFolderColor = "#6b7280"
