// 种子数据：预置分类和一篇示例文章
// 可重复执行，已存在的记录按 slug 跳过
package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"debugops/server/config"
	"debugops/server/internal/database"
	"debugops/server/internal/model/catalog"
)

var categories = []catalog.Category{
	{
		Name:        "DevOps",
		Slug:        "devops",
		Description: "Docker, Kubernetes, CI/CD, AWS, Terraform",
		Icon:        "Wrench",
		Color:       "bg-blue-500",
	},
	{
		Name:        "Programming",
		Slug:        "programming",
		Description: "Python, C, C++, and other programming languages",
		Icon:        "Code",
		Color:       "bg-green-500",
	},
	{
		Name:        "Cybersecurity",
		Slug:        "cybersecurity",
		Description: "Ethical hacking, pentesting, security tools",
		Icon:        "Shield",
		Color:       "bg-red-500",
	},
	{
		Name:        "Linux",
		Slug:        "linux",
		Description: "Linux system administration and troubleshooting",
		Icon:        "Terminal",
		Color:       "bg-purple-500",
	},
}

func main() {
	config.MustLoad("config.yaml")
	database.InitDatabase()
	db := database.GetDB()

	for _, c := range categories {
		if err := upsertCategory(db, c); err != nil {
			log.Fatal().Err(err).Str("slug", c.Slug).Msg("分类写入失败")
		}
	}

	if err := seedSampleError(db); err != nil {
		log.Fatal().Err(err).Msg("示例文章写入失败")
	}

	log.Info().Msg("种子数据写入完成")
}

func upsertCategory(db *gorm.DB, c catalog.Category) error {
	var existing catalog.Category
	err := db.Where("slug = ?", c.Slug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	c.CreatedAt = time.Now()
	return db.Create(&c).Error
}

func seedSampleError(db *gorm.DB) error {
	const slug = "docker-daemon-connection-error"

	var existing catalog.Error
	err := db.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var devops catalog.Category
	if err := db.Where("slug = ?", "devops").First(&devops).Error; err != nil {
		return err
	}

	sample := catalog.Error{
		Title:       "Docker: 'Cannot connect to Docker daemon' Error",
		Slug:        slug,
		Excerpt:     "Error response from daemon: Cannot connect to the Docker daemon at unix:///var/run/docker.sock",
		Content:     sampleContent,
		CategoryID:  devops.ID,
		Subcategory: "Docker",
		Status:      catalog.StatusPublished,
		CreatedAt:   time.Now(),
	}
	return db.Create(&sample).Error
}

const sampleContent = `# Problem

You're getting this error when trying to run Docker commands:

` + "```bash\nCannot connect to the Docker daemon at unix:///var/run/docker.sock.\nIs the docker daemon running?\n```" + `

## Root Cause

This error occurs when:
1. Docker daemon is not running
2. Your user doesn't have permission to access Docker
3. Docker socket is not accessible

## Solution

### Step 1: Check if Docker is running

` + "```bash\nsudo systemctl status docker\n```" + `

If not running, start it:

` + "```bash\nsudo systemctl start docker\nsudo systemctl enable docker\n```" + `

### Step 2: Add user to docker group

` + "```bash\nsudo usermod -aG docker $USER\n```" + `

**Important**: Log out and log back in for this to take effect.

### Step 3: Verify permissions

` + "```bash\nls -l /var/run/docker.sock\n```" + `
`
