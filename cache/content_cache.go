package content_cache

import (
	"sync"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
)

const TTL = 5 * time.Minute

// ── Sitewide alerts cache ────────────────────────────────────────────────────
// Holds every active-flagged alert; schedule windows are applied on read so a
// cached alert still expires on time.

type alertEntry struct {
	alerts    []models.SitewideAlert
	fetchedAt time.Time
}

var (
	alertMu    sync.RWMutex
	alertCache *alertEntry
)

func GetAlerts() ([]models.SitewideAlert, bool) {
	alertMu.RLock()
	defer alertMu.RUnlock()
	if alertCache != nil && time.Since(alertCache.fetchedAt) < TTL {
		return alertCache.alerts, true
	}
	return nil, false
}

func SetAlerts(alerts []models.SitewideAlert) {
	alertMu.Lock()
	defer alertMu.Unlock()
	alertCache = &alertEntry{alerts: alerts, fetchedAt: time.Now()}
}

func InvalidateAlerts() {
	alertMu.Lock()
	alertCache = nil
	alertMu.Unlock()
}

// ── Page SEO cache, keyed by normalized path ─────────────────────────────────

type seoEntry struct {
	page      *models.PageSEO // nil records a known miss
	fetchedAt time.Time
}

var (
	seoMu    sync.RWMutex
	seoCache = map[string]seoEntry{}
)

// GetSEO reports the cached page (nil for a cached miss) and whether the
// path was cached at all.
func GetSEO(path string) (*models.PageSEO, bool) {
	seoMu.RLock()
	defer seoMu.RUnlock()
	e, ok := seoCache[path]
	if !ok || time.Since(e.fetchedAt) >= TTL {
		return nil, false
	}
	return e.page, true
}

func SetSEO(path string, page *models.PageSEO) {
	seoMu.Lock()
	defer seoMu.Unlock()
	seoCache[path] = seoEntry{page: page, fetchedAt: time.Now()}
}

func InvalidateSEO() {
	seoMu.Lock()
	seoCache = map[string]seoEntry{}
	seoMu.Unlock()
}
