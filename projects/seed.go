package projects

import "portfolio-server/model"

// DefaultCatalog returns the static project catalog. Injected into
// NewRepository so tests can supply fixtures instead.
func DefaultCatalog() []model.Project {
	return []model.Project{
		{
			ID:           "ecommerce-platform",
			Title:        "E-commerce Platform",
			Description:  "Full-stack storefront with cart, checkout and an admin panel.",
			Category:     "web",
			Technologies: []string{"Next.js", "TypeScript", "Prisma", "PostgreSQL", "Stripe"},
			Featured:     true,
			GithubURL:    "https://github.com/andre806/ecommerce-platform",
			LiveURL:      "https://shop.andre.dev",
			Year:         2025,
		},
		{
			ID:           "task-manager",
			Title:        "Task Manager",
			Description:  "Kanban-style task board with drag-and-drop and offline support.",
			Category:     "web",
			Technologies: []string{"React", "TypeScript", "IndexedDB", "Tailwind"},
			Featured:     true,
			GithubURL:    "https://github.com/andre806/task-manager",
			LiveURL:      "https://tasks.andre.dev",
			Year:         2025,
		},
		{
			ID:           "weather-app",
			Title:        "Weather App",
			Description:  "Location-aware forecast app with hourly and weekly views.",
			Category:     "mobile",
			Technologies: []string{"React Native", "TypeScript", "OpenWeather API"},
			GithubURL:    "https://github.com/andre806/weather-app",
			Year:         2024,
		},
		{
			ID:           "portfolio-api",
			Title:        "Portfolio API",
			Description:  "The backend serving this site: metrics, mailer and content endpoints.",
			Category:     "backend",
			Technologies: []string{"Go", "Redis", "Docker"},
			GithubURL:    "https://github.com/andre806/portfolio-api",
			Year:         2026,
		},
		{
			ID:           "chat-service",
			Title:        "Chat Service",
			Description:  "Realtime chat backend with rooms and message history.",
			Category:     "backend",
			Technologies: []string{"Go", "WebSocket", "Redis", "PostgreSQL"},
			GithubURL:    "https://github.com/andre806/chat-service",
			Year:         2025,
		},
		{
			ID:           "blog-engine",
			Title:        "Blog Engine",
			Description:  "Markdown blog engine with tags, search and RSS.",
			Category:     "web",
			Technologies: []string{"Next.js", "TypeScript", "MDX"},
			GithubURL:    "https://github.com/andre806/blog-engine",
			LiveURL:      "https://blog.andre.dev",
			Year:         2024,
		},
		{
			ID:           "fitness-tracker",
			Title:        "Fitness Tracker",
			Description:  "Workout logging app with progress charts.",
			Category:     "mobile",
			Technologies: []string{"React Native", "SQLite", "TypeScript"},
			Year:         2024,
		},
		{
			ID:           "devops-toolkit",
			Title:        "DevOps Toolkit",
			Description:  "CLI helpers for container builds and deployment pipelines.",
			Category:     "tooling",
			Technologies: []string{"Go", "Docker", "GitHub Actions"},
			GithubURL:    "https://github.com/andre806/devops-toolkit",
			Year:         2025,
		},
	}
}
