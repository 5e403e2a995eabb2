package blog

import "time"

func seedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedTimePtr(s string) *time.Time {
	t := seedTime(s)
	return &t
}

// SeedCategories returns a fresh copy of the demo categories.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Match Reports", Slug: "match-reports", Description: "Detailed coverage of ASA matches, including analysis and highlights", PostsCount: 24, Color: "#dc2626", IsActive: true, CreatedAt: seedTime("2023-08-15T10:00:00Z"), UpdatedAt: seedTime("2024-01-15T10:00:00Z")},
		{ID: 2, Name: "Transfers", Slug: "transfers", Description: "Latest news on player transfers, signings, and contract updates", PostsCount: 18, Color: "#2563eb", IsActive: true, CreatedAt: seedTime("2023-08-20T10:00:00Z"), UpdatedAt: seedTime("2024-01-14T10:00:00Z")},
		{ID: 3, Name: "Training", Slug: "training", Description: "Behind-the-scenes look at training sessions and preparation", PostsCount: 15, Color: "#16a34a", IsActive: true, CreatedAt: seedTime("2023-09-01T10:00:00Z"), UpdatedAt: seedTime("2024-01-12T10:00:00Z")},
		{ID: 4, Name: "Programming", Slug: "programming", Description: "Programming tutorials and guides", PostsCount: 8, Color: "#7c3aed", IsActive: true, CreatedAt: seedTime("2023-09-05T10:00:00Z"), UpdatedAt: seedTime("2024-01-10T10:00:00Z")},
		{ID: 5, Name: "Development", Slug: "development", Description: "Web development and software engineering", PostsCount: 12, Color: "#ea580c", IsActive: true, CreatedAt: seedTime("2023-09-10T10:00:00Z"), UpdatedAt: seedTime("2024-01-08T10:00:00Z")},
		{ID: 6, Name: "Design", Slug: "design", Description: "UI/UX design and visual design principles", PostsCount: 6, Color: "#db2777", IsActive: true, CreatedAt: seedTime("2023-09-15T10:00:00Z"), UpdatedAt: seedTime("2024-01-05T10:00:00Z")},
	}
}

// SeedPosts returns a fresh copy of the demo posts in store order.
func SeedPosts() []Post {
	return []Post{
		{
			ID:               1,
			Title:            "ASA Wins Championship Final Against Wydad Casablanca",
			Slug:             "asa-wins-championship-final-wydad",
			Excerpt:          "In a thrilling match that went into extra time, ASA secured their first championship title in over a decade with a spectacular 3-2 victory.",
			Content:          championshipContent,
			FeaturedImageURL: "https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg",
			Author:           Author{Name: "Ahmed Benali", Bio: "Sports journalist covering ASA for over 10 years"},
			Category:         CategoryRef{Name: "Match Reports", Slug: "match-reports"},
			Tags:             NewTags([]string{"Championship", "Victory", "Wydad", "Final"}),
			Status:           StatusPublished,
			PublishedAt:      seedTimePtr("2024-01-15T10:00:00Z"),
			UpdatedAt:        seedTime("2024-01-15T10:00:00Z"),
			Views:            2847,
			CommentsCount:    45,
			ReadingTime:      5,
			MetaTitle:        "ASA Wins Championship Final Against Wydad Casablanca - Historic Victory",
			MetaDescription:  "ASA secured their first championship title in over a decade with a spectacular 3-2 victory against Wydad Casablanca in extra time.",
		},
		{
			ID:               2,
			Title:            "New Signing: Youssef Amrani Joins ASA",
			Slug:             "new-signing-youssef-amrani",
			Excerpt:          "The talented midfielder from Raja Casablanca brings experience and skill to strengthen our midfield.",
			Content:          signingContent,
			FeaturedImageURL: "https://images.pexels.com/photos/1884574/pexels-photo-1884574.jpeg",
			Author:           Author{Name: "Sara Alami", Bio: "Transfer news specialist"},
			Category:         CategoryRef{Name: "Transfers", Slug: "transfers"},
			Tags:             NewTags([]string{"Transfer", "New Player", "Midfielder"}),
			Status:           StatusPublished,
			PublishedAt:      seedTimePtr("2024-01-14T15:30:00Z"),
			UpdatedAt:        seedTime("2024-01-14T15:30:00Z"),
			Views:            1249,
			CommentsCount:    23,
			ReadingTime:      3,
			MetaTitle:        "New Signing: Youssef Amrani Joins ASA",
			MetaDescription:  "The talented midfielder from Raja Casablanca brings experience and skill to strengthen our midfield.",
		},
		{
			ID:               3,
			Title:            "Advanced TypeScript Techniques",
			Slug:             "advanced-typescript-techniques",
			Excerpt:          "Learn advanced TypeScript patterns and techniques to write better, more maintainable code.",
			Content:          typescriptContent,
			FeaturedImageURL: "https://images.pexels.com/photos/11035380/pexels-photo-11035380.jpeg",
			Author:           Author{Name: "Mike Chen", Bio: "Senior TypeScript Developer"},
			Category:         CategoryRef{Name: "Programming", Slug: "programming"},
			Tags:             NewTags([]string{"TypeScript", "JavaScript", "Programming"}),
			Status:           StatusDraft,
			UpdatedAt:        seedTime("2024-01-13T10:00:00Z"),
			ReadingTime:      8,
			MetaTitle:        "Advanced TypeScript Techniques - Complete Guide",
			MetaDescription:  "Learn advanced TypeScript patterns and techniques to write better, more maintainable code.",
		},
		{
			ID:               4,
			Title:            "Building Modern Web Apps",
			Slug:             "building-modern-web-apps",
			Excerpt:          "A comprehensive guide to building modern web applications with the latest technologies and best practices.",
			Content:          webAppsContent,
			FeaturedImageURL: "https://images.pexels.com/photos/11035471/pexels-photo-11035471.jpeg",
			Author:           Author{Name: "Alex Kumar", Bio: "Full Stack Developer"},
			Category:         CategoryRef{Name: "Development", Slug: "development"},
			Tags:             NewTags([]string{"Web Development", "Modern", "Apps"}),
			Status:           StatusPublished,
			PublishedAt:      seedTimePtr("2024-01-14T09:00:00Z"),
			UpdatedAt:        seedTime("2024-01-14T09:00:00Z"),
			Views:            2847,
			CommentsCount:    45,
			ReadingTime:      6,
			MetaTitle:        "Building Modern Web Apps - Complete Guide",
			MetaDescription:  "A comprehensive guide to building modern web applications with the latest technologies and best practices.",
		},
		{
			ID:               5,
			Title:            "CSS Grid Layout Guide",
			Slug:             "css-grid-layout-guide",
			Excerpt:          "Master CSS Grid Layout with this comprehensive guide covering all the essential concepts and practical examples.",
			Content:          cssGridContent,
			FeaturedImageURL: "https://images.pexels.com/photos/11035540/pexels-photo-11035540.jpeg",
			Author:           Author{Name: "Emma Wilson", Bio: "CSS Specialist and UI Designer"},
			Category:         CategoryRef{Name: "Design", Slug: "design"},
			Tags:             NewTags([]string{"CSS", "Layout", "Grid"}),
			Status:           StatusScheduled,
			ScheduledAt:      seedTimePtr("2024-01-20T10:00:00Z"),
			UpdatedAt:        seedTime("2024-01-13T14:00:00Z"),
			ReadingTime:      7,
			MetaTitle:        "CSS Grid Layout Guide - Master Modern CSS Layouts",
			MetaDescription:  "Master CSS Grid Layout with this comprehensive guide covering all the essential concepts and practical examples.",
		},
		{
			ID:               6,
			Title:            "agareb",
			Slug:             "agareb",
			Excerpt:          "Brief excerpt for agareb",
			Content:          "<h2>Welcome to agareb</h2><p>This is the main content of the post...</p>",
			FeaturedImageURL: defaultFeaturedImage,
			Author:           currentAuthor,
			Category:         CategoryRef{Name: "Transfers", Slug: "transfers"},
			Tags:             []Tag{},
			Status:           StatusPublished,
			PublishedAt:      seedTimePtr("2025-08-28T22:00:00Z"),
			UpdatedAt:        seedTime("2025-08-28T22:00:00Z"),
			ReadingTime:      1,
			MetaTitle:        "agareb",
			MetaDescription:  "Learn about agareb",
		},
	}
}
