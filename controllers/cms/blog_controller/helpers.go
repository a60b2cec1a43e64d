package blog_controller

import (
	"context"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/utils"
	"github.com/google/uuid"
)

// slugTaken reports whether another post already uses slug.
func slugTaken(ctx context.Context, slug string, except uuid.UUID) (bool, error) {
	q := config.DB.WithContext(ctx).Model(&models.BlogPost{}).Where("slug = ?", slug)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func slugFor(explicit, title string) string {
	if strings.TrimSpace(explicit) != "" {
		return utils.Slugify(explicit)
	}
	return utils.Slugify(title)
}
