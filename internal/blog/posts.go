// Package blog 静态博客板块
// 文章暂时硬编码在进程内，原型阶段先不落库
package blog

// Post 博客文章
type Post struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content,omitempty"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

var posts = []Post{
	{
		Slug:    "getting-started-with-debugops",
		Title:   "Getting Started with DebugOps",
		Excerpt: "Learn how to use DebugOps to document and solve your development errors. A comprehensive guide for developers.",
		Content: `# Getting Started with DebugOps

Welcome to DebugOps! This guide will help you get started with documenting your errors and solutions.

## Why Document Errors?

Every developer encounters errors. Instead of solving the same problem multiple times, document it once and reference it forever.

## How to Use DebugOps

### 1. Browse Existing Solutions

Use the search bar to find solutions to common errors. Our database covers:
- DevOps (Docker, Kubernetes, CI/CD)
- Programming (Python, C/C++)
- Cybersecurity (Ethical Hacking)
- Linux System Administration

### 2. Add Your Own Solutions

Found a solution to an error? Share it with the community.

### 3. Build Your Knowledge Base

As you document errors, you're building a personal knowledge base that you can reference anytime.

## Best Practices

1. **Be Specific**: Include exact error messages
2. **Show Context**: Explain when/where the error occurs
3. **Provide Steps**: Clear, step-by-step solutions
4. **Add Prevention**: How to avoid the error in the future

## Start Documenting Today!

Turn your debugging experience into valuable documentation that helps you and others.`,
		Author:   "DebugOps Team",
		Date:     "2024-11-10",
		ReadTime: "5 min read",
		Category: "Tutorial",
		Featured: true,
	},
	{
		Slug:    "top-10-docker-errors",
		Title:   "Top 10 Docker Errors and How to Fix Them",
		Excerpt: "A comprehensive guide to the most common Docker errors developers encounter and their proven solutions.",
		Content: `# Top 10 Docker Errors and How to Fix Them

Docker is powerful but can be tricky. Here are the top 10 errors developers encounter.

## 1. Cannot Connect to Docker Daemon

` + "```bash\nCannot connect to the Docker daemon at unix:///var/run/docker.sock\n```" + `

**Solution**: Start the Docker daemon or add your user to the docker group.

## 2. Port Already in Use

` + "```bash\nError: Bind for 0.0.0.0:8080 failed: port is already allocated\n```" + `

**Solution**: Stop the container holding the port or map a different host port.`,
		Author:   "DevOps Expert",
		Date:     "2024-11-12",
		ReadTime: "10 min read",
		Category: "DevOps",
		Featured: true,
	},
	{
		Slug:     "python-debugging-tips",
		Title:    "Essential Python Debugging Tips",
		Excerpt:  "Master Python debugging with these essential tips and tricks used by professional developers.",
		Content:  "# Essential Python Debugging Tips\n\nMaster `pdb`, logging and assertions before reaching for print statements.",
		Author:   "Python Developer",
		Date:     "2024-11-08",
		ReadTime: "8 min read",
		Category: "Programming",
		Featured: false,
	},
	{
		Slug:     "kubernetes-troubleshooting-guide",
		Title:    "Kubernetes Troubleshooting Guide",
		Excerpt:  "Complete guide to troubleshooting common Kubernetes issues in production environments.",
		Content:  "# Kubernetes Troubleshooting Guide\n\nStart with `kubectl describe` and `kubectl logs`; most issues surface there.",
		Author:   "Cloud Architect",
		Date:     "2024-11-05",
		ReadTime: "12 min read",
		Category: "DevOps",
		Featured: false,
	},
}

// List 返回全部文章（不含正文）
func List() []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		p.Content = ""
		out = append(out, p)
	}
	return out
}

// GetBySlug 按 slug 查找文章，找不到返回 false
func GetBySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
