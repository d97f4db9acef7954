package generate

var categories = []string{
	"Technology", "Programming", "Web Development", "DevOps", "Cloud Computing",
	"Artificial Intelligence", "Machine Learning", "Data Science", "Cybersecurity",
	"Mobile Development", "Frontend", "Backend", "Database", "Architecture",
	"Tools", "Productivity", "Career", "Tutorial", "Review", "Opinion",
	"Industry News", "Open Source", "Performance", "Testing", "Debugging",
}

var techTopics = []string{
	"JavaScript", "Python", "Go", "Rust", "TypeScript", "React", "Vue.js", "Angular",
	"Node.js", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "MongoDB", "PostgreSQL",
	"Redis", "Elasticsearch", "GraphQL", "REST API", "Microservices", "Serverless",
	"CI/CD", "Git", "Linux", "Bash", "Vim", "VS Code", "IntelliJ", "Terraform",
	"Ansible", "Jenkins", "GitHub Actions", "GitLab", "Nginx", "Apache", "MySQL",
	"SQLite", "Firebase", "Supabase", "Vercel", "Netlify", "Heroku", "DigitalOcean",
}

var frameworks = []string{
	"Spring Boot", "Django", "Flask", "FastAPI", "Express.js", "Gin", "Fiber",
	"Laravel", "Rails", "Phoenix", "Next.js", "Nuxt.js", "Svelte", "Remix",
	"Astro", "Gatsby", "Hugo", "Jekyll", "Eleventy", "Tailwind CSS", "Bootstrap",
	"Material UI", "Chakra UI", "Ant Design", "Styled Components", "Sass", "LESS",
}

var kinds = []Kind{KindTutorial, KindReview, KindOpinion, KindGuide, KindAnalysis, KindComparison}

// Extra tags per article kind; kinds not listed add none.
var kindTags = map[Kind][]string{
	KindTutorial: {"tutorial", "step-by-step", "guide"},
	KindReview:   {"review", "analysis", "comparison"},
	KindOpinion:  {"opinion", "thoughts", "perspective"},
}

var titleTemplates = []string{
	"The Evolution of {lang} in Modern Development",
	"Why {lang} is Perfect for {type} Applications",
	"Advanced {lang} Techniques Every Developer Should Know",
	"Building Scalable Applications with {lang}",
	"Performance Optimization in {lang}",
	"From Beginner to Expert: {lang} Learning Path",
	"Common {lang} Mistakes and How to Avoid Them",
	"Testing Strategies for {lang} Applications",

	"Modern {framework} Development Best Practices",
	"Building Production-Ready {framework} Applications",
	"State Management in {framework}: A Complete Guide",
	"Performance Optimization for {framework} Apps",
	"Security Best Practices in {framework}",
	"From Zero to Production: {framework} Deployment Guide",
	"Advanced {framework} Patterns and Techniques",
	"Comparing {framework} with Alternative Solutions",

	"Container Orchestration with {tool}",
	"Infrastructure as Code using {tool}",
	"CI/CD Pipeline Design with {tool}",
	"Monitoring and Observability in {environment}",
	"Security Hardening for {platform}",
	"Cost Optimization Strategies for {cloud}",
	"Disaster Recovery Planning with {platform}",
	"Automated Testing in {environment}",

	"Career Growth in {field}",
	"Essential Skills for {role} Developers",
	"Remote Work Best Practices for {role}",
	"Interview Preparation for {role} Positions",
	"Building a Portfolio as a {role}",
	"Networking Strategies in the {field} Industry",
	"Salary Negotiation for {role} Professionals",
	"Transitioning from {old_role} to {new_role}",

	"Step-by-Step Guide to {task}",
	"Building {project} from Scratch",
	"Implementing {feature} in {tech}",
	"Debugging {issue} in {environment}",
	"Optimizing {metric} for {application}",
	"Migrating from {old_tech} to {new_tech}",
	"Setting up {environment} for Development",
	"Automating {process} with {tool}",

	"Comprehensive Review of {tool}",
	"Comparing {tool1} vs {tool2} in 2025",
	"Why We Switched from {old_tool} to {new_tool}",
	"Honest Review: {product} After 6 Months",
	"The Ultimate {category} Tool Comparison",
	"Is {tool} Worth the Hype? A Developer's Perspective",
	"Benchmarking {tool1} vs {tool2} Performance",
	"Feature Comparison: {tool} Alternatives",

	"The Future of {technology} in 2026",
	"How {trend} is Changing Software Development",
	"Industry Report: State of {field} in 2025",
	"Emerging Trends in {domain}",
	"The Impact of {technology} on {industry}",
	"Predictions for {field} in the Next Decade",
	"Why {concept} is the Next Big Thing",
	"The Rise and Fall of {technology}",
}

var titleFills = map[string][]string{
	"lang":          {"JavaScript", "Python", "Go", "TypeScript", "Rust"},
	"type":          {"web", "mobile", "enterprise", "cloud-native"},
	"framework":     frameworks,
	"tool":          techTopics,
	"tool1":         techTopics,
	"tool2":         techTopics,
	"field":         {"Software Development", "DevOps", "Data Science"},
	"role":          {"Frontend", "Backend", "Full-Stack", "DevOps"},
	"old_role":      {"Junior", "Mid-Level"},
	"new_role":      {"Senior", "Lead", "Principal"},
	"task":          {"building a REST API", "setting up CI/CD", "implementing authentication"},
	"project":       {"a blog engine", "a task manager", "an e-commerce site"},
	"tech":          techTopics,
	"environment":   {"production", "development", "staging"},
	"issue":         {"memory leaks", "performance issues", "connection errors"},
	"application":   {"web applications", "mobile apps", "microservices"},
	"metric":        {"response time", "throughput", "memory usage"},
	"old_tech":      techTopics,
	"new_tech":      techTopics,
	"process":       {"deployment", "testing", "monitoring"},
	"technology":    append(append([]string{}, techTopics...), "AI", "Machine Learning", "Blockchain"),
	"trend":         {"AI integration", "edge computing", "serverless architecture"},
	"domain":        {"web development", "mobile development", "cloud computing"},
	"industry":      {"fintech", "healthcare", "e-commerce"},
	"concept":       {"edge computing", "quantum computing", "Web3"},
	"feature":       {"authentication", "caching", "routing", "state management"},
	"consideration": {"performance", "security", "scalability", "maintainability"},
	"platform":      {"AWS", "Azure", "Google Cloud", "Kubernetes"},
	"cloud":         {"AWS", "Azure", "Google Cloud"},
	"category":      {"development tools", "frameworks", "databases", "cloud services"},
	"product":       techTopics,
	"old_tool":      techTopics,
	"new_tool":      techTopics,
}

var tutorialSections = []string{
	"## Prerequisites\n\nBefore we begin, make sure you have:",
	"## Setting Up the Environment\n\nFirst, let's set up our development environment:",
	"## Step-by-Step Implementation\n\nNow let's implement the solution step by step:",
	"## Best Practices\n\nHere are some best practices to keep in mind:",
	"## Common Issues and Solutions\n\nYou might encounter these common issues:",
	"## Testing and Validation\n\nLet's test our implementation:",
	"## Performance Considerations\n\nFor optimal performance, consider:",
	"## Security Considerations\n\nFrom a security perspective:",
	"## Deployment and Production\n\nWhen deploying to production:",
	"## Conclusion\n\nIn this tutorial, we've covered:",
}

var reviewSections = []string{
	"## Introduction\n\nIn this comprehensive review, we'll examine:",
	"## Key Features\n\nThe standout features include:",
	"## Performance Analysis\n\nOur performance testing revealed:",
	"## Pros and Cons\n\n### Advantages:",
	"### Disadvantages:",
	"## Use Cases\n\nThis tool excels in scenarios such as:",
	"## Comparison with Alternatives\n\nCompared to similar tools:",
	"## Pricing and Value\n\nFrom a cost perspective:",
	"## Community and Support\n\nThe community ecosystem offers:",
	"## Final Verdict\n\nAfter extensive testing:",
}

var opinionSections = []string{
	"## The Current State of Affairs\n\nLooking at the current landscape:",
	"## Why This Matters\n\nThis topic is crucial because:",
	"## Different Perspectives\n\nThere are several viewpoints to consider:",
	"## Personal Experience\n\nFrom my own experience:",
	"## Industry Implications\n\nThe broader implications include:",
	"## Future Outlook\n\nLooking ahead, we can expect:",
	"## Recommendations\n\nBased on this analysis, I recommend:",
	"## Call to Action\n\nWhat can we do about this?",
}

var sentenceTemplates = []string{
	"This approach provides {benefit} while maintaining {quality}.",
	"When implementing {feature}, it's important to consider {consideration}.",
	"The {technology} ecosystem offers {advantage} for {use_case}.",
	"Many developers overlook {aspect} when working with {tool}.",
	"Performance benchmarks show {metric} improvement over {comparison}.",
	"The key to successful {process} lies in {factor}.",
	"Modern {field} practices emphasize {principle} and {value}.",
	"Integration with {service} enables {capability} across {scope}.",
	"Security researchers recommend {practice} to prevent {threat}.",
	"The latest version introduces {feature} for better {outcome}.",
	"Community feedback indicates strong preference for {approach}.",
	"Documentation clearly outlines the steps for {process}.",
	"Error handling becomes crucial when dealing with {scenario}.",
	"The configuration file should specify {parameter} for optimal {result}.",
	"Testing frameworks provide {functionality} to ensure {quality}.",
}

var benefits = []string{
	"better performance", "improved scalability", "enhanced security", "greater flexibility",
	"reduced complexity", "faster development", "better maintainability", "improved user experience",
}

// {metric} is filled with a random percentage instead of a word.
var sentenceFills = map[string][]string{
	"benefit":       benefits,
	"advantage":     benefits,
	"quality":       {"code quality", "system stability", "data integrity", "user privacy", "application security"},
	"technology":    {"React", "Node.js", "Docker", "Kubernetes", "PostgreSQL", "Redis", "GraphQL", "TypeScript"},
	"feature":       {"authentication", "caching", "routing", "state management", "data validation", "error tracking"},
	"consideration": {"performance implications", "security vulnerabilities", "scalability requirements", "browser compatibility"},
	"tool":          techTopics,
	"use_case":      {"web applications", "mobile apps", "APIs", "microservices", "data processing"},
	"aspect":        {"error handling", "performance optimization", "security", "testing", "documentation"},
	"comparison":    {"previous versions"},
	"process":       {"deployment", "testing", "development", "debugging", "optimization"},
	"factor":        {"proper planning", "team collaboration", "clear documentation", "automated testing"},
	"field":         {"software development", "web development", "DevOps", "data engineering"},
	"principle":     {"DRY principles", "SOLID principles", "clean code", "test-driven development"},
	"value":         {"maintainability", "readability", "performance", "security"},
	"service":       {"AWS", "Azure", "Google Cloud", "GitHub", "Docker Hub"},
	"capability":    {"seamless scaling", "automated deployment", "real-time monitoring", "data synchronization"},
	"scope":         {"multiple environments", "different platforms", "various devices", "global regions"},
	"practice":      {"input validation", "secure authentication", "encrypted communication", "regular updates"},
	"threat":        {"XSS attacks", "SQL injection", "data breaches", "unauthorized access"},
	"outcome":       {"performance", "reliability", "security", "usability"},
	"approach":      {"declarative syntax", "functional programming", "microservices architecture", "containerization"},
	"functionality": {"mocking capabilities", "assertion libraries", "coverage reporting", "parallel execution"},
	"scenario":      {"network failures", "high traffic", "data corruption", "service outages"},
	"parameter":     {"timeout values", "cache expiration", "connection pools", "retry policies"},
	"result":        {"performance", "reliability", "efficiency", "throughput"},
}

// Description templates take the lower-cased title.
var descriptions = []string{
	"A comprehensive guide to %s covering best practices and real-world examples.",
	"Learn about %s with practical examples and expert insights.",
	"Deep dive into %s - from basics to advanced techniques.",
	"Everything you need to know about %s in modern development.",
	"Practical guide to implementing %s in your projects.",
	"Master %s with this detailed tutorial and examples.",
	"Complete overview of %s with hands-on examples.",
	"Expert insights on %s for modern developers.",
}

var authors = []string{
	"Alex Chen", "Sarah Johnson", "Michael Rodriguez", "Emily Zhang", "David Kim",
	"Jessica Wong", "Ryan O'Connor", "Lisa Thompson", "Ahmed Hassan", "Maria Garcia",
	"James Wilson", "Priya Patel", "Tom Anderson", "Rachel Green", "Kevin Liu",
	"Anna Kowalski", "Carlos Mendez", "Sophie Martin", "Jake Peterson", "Nina Popov",
}
