package content_cache

import (
	"testing"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertCacheRoundTrip(t *testing.T) {
	InvalidateAlerts()
	_, ok := GetAlerts()
	assert.False(t, ok)

	SetAlerts([]models.SitewideAlert{{Title: "Free shipping"}})
	got, ok := GetAlerts()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Free shipping", got[0].Title)

	InvalidateAlerts()
	_, ok = GetAlerts()
	assert.False(t, ok)
}

func TestAlertCacheExpires(t *testing.T) {
	alertMu.Lock()
	alertCache = &alertEntry{fetchedAt: time.Now().Add(-TTL - time.Second)}
	alertMu.Unlock()

	_, ok := GetAlerts()
	assert.False(t, ok)
}

func TestSEOCacheRemembersMisses(t *testing.T) {
	InvalidateSEO()

	SetSEO("/missing", nil)
	page, ok := GetSEO("/missing")
	assert.True(t, ok)
	assert.Nil(t, page)

	SetSEO("/", &models.PageSEO{PagePath: "/", Title: "Home"})
	page, ok = GetSEO("/")
	require.True(t, ok)
	assert.Equal(t, "Home", page.Title)

	InvalidateSEO()
	_, ok = GetSEO("/")
	assert.False(t, ok)
}
