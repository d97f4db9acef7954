package taxonomy

// DefaultCategories folds case variants and near-duplicates into the
// top-level category set.
func DefaultCategories() Table {
	return Table{
		"technology":          Rename("technology"),
		"Technology":          Rename("technology"),
		"General":             Rename("technology"),
		"personal":            Rename("personal"),
		"Personal":            Rename("personal"),
		"personal-reflection": Rename("personal"),
		"thoughts":            Rename("personal"),
		"musings":             Rename("personal"),
		"career":              Rename("career"),
		"Career":              Rename("career"),
		"leadership":          Rename("career"),
		"music":               Rename("music"),
		"cricket":             Rename("cricket"),
		"philosophy":          Rename("philosophy"),
		"reflection":          Rename("philosophy"),
		"tools":               Rename("tools"),
		"development-tools":   Rename("tools"),
		"devops":              Rename("tools"),
		"DevOps":              Rename("tools"),
		"infrastructure":      Rename("tools"),
		"Infrastructure":      Rename("tools"),
		"culture":             Rename("culture"),
		"travel":              Rename("culture"),
		"entrepreneurship":    Rename("culture"),
		"community":           Rename("culture"),
		"database":            Rename("technology"),
		"backend":             Rename("technology"),
		"backend-development": Rename("technology"),
		"javascript":          Rename("technology"),
		"guides":              Rename("technology"),
		"tutorials":           Rename("technology"),
		"events":              Rename("culture"),
		"reviews":             Rename("tools"),
		"search":              Rename("technology"),
		"announcements":       Rename("technology"),
		"Thoughts":            Rename("personal"),
	}
}

// DefaultTags consolidates overlapping tags and drops ones that are too
// specific to be useful. Chains are resolved to their final target.
func DefaultTags() Table {
	return Table{
		// Programming Languages & Frameworks
		"go":             Rename("golang"),
		"go-programming": Rename("golang"),
		"node-js":        Rename("nodejs"),

		// Architecture & Systems
		"microservices":       Rename("distributed-systems"),
		"circuit-breaker":     Rename("distributed-systems"),
		"resilience-patterns": Rename("distributed-systems"),
		"architecture":        Rename("system-architecture"),
		"backend-development": Rename("backend"),
		"scalability":         Rename("performance"),
		"disaster-recovery":   Rename("high-availability"),

		// Data & Storage
		"postgresql":            Rename("database"),
		"mysql":                 Rename("database"),
		"streaming-replication": Rename("database"),
		"distributed-caching":   Rename("redis"),
		"caching":               Rename("redis"),
		"statistics":            Rename("data-analysis"),
		"sports-analytics":      Rename("data-analysis"),

		// Infrastructure & Operations
		"devops":                Rename("infrastructure"),
		"production":            Rename("infrastructure"),
		"deployment":            Rename("infrastructure"),
		"monitoring":            Rename("infrastructure"),
		"load-balancing":        Rename("nginx"),
		"system-administration": Rename("linux"),
		"xfs":                   Rename("linux"),
		"bash":                  Rename("automation"),
		"backup":                Rename("automation"),

		// Development Practices
		"development-standards": Rename("best-practices"),
		"maintainability":       Rename("best-practices"),
		"code-style":            Rename("best-practices"),
		"version-control":       Rename("git"),
		"branching-strategy":    Rename("git"),
		"rebase":                Rename("git"),
		"code-reviews":          Rename("tools-review"),
		"bug-tracking":          Rename("tools-review"),
		"team-collaboration":    Rename("tools-review"),

		// Content Types
		"getting-started":   Rename("tutorial"),
		"guides":            Rename("tutorial"),
		"tech-tools":        Rename("tools-review"),
		"review":            Rename("tools-review"),
		"development-tools": Rename("tools-review"),

		// Specialized Topics
		"search-engine":         Rename("search"),
		"information-retrieval": Rename("search"),
		"elasticsearch":         Rename("search"),
		"dynamic-dns":           Rename("networking"),
		"wifi-configuration":    Rename("networking"),
		"raspberry-pi":          Rename("embedded-systems"),
		"home-server":           Rename("embedded-systems"),
		"array-sorting":         Rename("algorithms"),
		"data-manipulation":     Rename("algorithms"),
		"frontend-development":  Rename("web-development"),

		// Personal & Career
		"career":                 Rename("career-journey"),
		"career-transition":      Rename("career-journey"),
		"early-career":           Rename("career-journey"),
		"career-advice":          Rename("personal-growth"),
		"life-lessons":           Rename("personal-growth"),
		"self-reflection":        Rename("personal-growth"),
		"authenticity":           Rename("personal-growth"),
		"mentorship":             Rename("leadership"),
		"teamwork":               Rename("leadership"),
		"engineering-management": Rename("leadership"),
		"startup-life":           Rename("entrepreneurship"),
		"startup-ecosystem":      Rename("entrepreneurship"),
		"startup":                Rename("entrepreneurship"),
		"holidays":               Rename("work-life-balance"),
		"team-building":          Rename("work-life-balance"),
		"reflections":            Rename("reflection"),
		"personal-reflection":    Rename("reflection"),
		"introspection":          Rename("reflection"),
		"existentialism":         Rename("philosophy"),
		"meaning":                Rename("philosophy"),
		"consciousness":          Rename("philosophy"),
		"motivation":             Rename("personal-growth"),
		"inspiration":            Rename("personal-growth"),
		"career-development":     Rename("impostor-syndrome"),
		"system-design":          Rename("interviews"),
		"faang":                  Rename("interviews"),
		"senior-engineer":        Rename("interviews"),

		// Cultural & Interest
		"music":                   Rename("music-analysis"),
		"musical-analysis":        Rename("music-analysis"),
		"storytelling":            Rename("music-analysis"),
		"decibel":                 Rename("indian-rock"),
		"naagin":                  Rename("indian-rock"),
		"cultural-fusion":         Rename("indian-rock"),
		"rock-music":              Rename("classic-rock"),
		"bryan-adams":             Rename("classic-rock"),
		"bob-dylan":               Rename("classic-rock"),
		"live-concerts":           Rename("music-events"),
		"india-tour":              Rename("music-events"),
		"cricket":                 Rename("cricket-analysis"),
		"cricket-history":         Rename("cricket-analysis"),
		"kathmandu":               Rename("nepal"),
		"nepali-poetry":           Rename("nepal"),
		"cultural-identity":       Rename("nepal"),
		"hyderabad":               Rename("india"),
		"delhi":                   Rename("india"),
		"nizam-era":               Rename("india"),
		"heritage":                Rename("travel"),
		"photography":             Rename("travel"),
		"history":                 Rename("travel"),
		"metaverse":               Rename("future-tech"),
		"artificial-intelligence": Rename("future-tech"),
		"virtual-reality":         Rename("future-tech"),
		"gnome":                   Rename("open-source"),
		"legacy":                  Rename("open-source"),
		"english":                 Rename("language"),
		"poetry":                  Rename("language"),
		"pronunciation":           Rename("language"),
		"literature":              Rename("language"),
		"gource":                  Rename("visualization"),
		"ffmpeg":                  Rename("visualization"),
		"video-creation":          Rename("visualization"),

		// Specialized
		"diffusion":      Rename("phabricator"),
		"chaos":          Rename("humor"),
		"freedom":        Rename("rant"),
		"individuality":  Rename("rant"),
		"pink-floyd":     Rename("rant"),
		"spirituality":   Rename("mythology"),
		"ancient-wisdom": Rename("mythology"),
		"blog":           Rename("announcements"),
		"migration":      Rename("announcements"),
		"fresh-start":    Rename("announcements"),
		"welcome":        Rename("announcements"),
		"web-design":     Rename("news-aggregation"),
		"zyoba-labs":     Rename("community"),
		"blogging":       Rename("community"),

		// Too specific or too broad to keep
		"user-experience": Remove(),
		"thamel":          Remove(),
		"purple-haze":     Remove(),
		"new-year":        Remove(),
		"farewell":        Remove(),
		"birthdays":       Remove(),
		"song-of-the-day": Remove(),
	}
}
