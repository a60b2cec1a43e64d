package services

import (
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
)

// AlertIsLive reports whether an alert should be shown at now: active and
// inside its optional schedule window.
func AlertIsLive(a models.SitewideAlert, now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartsAt != nil && now.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && !now.Before(*a.EndsAt) {
		return false
	}
	return true
}

func ActiveAlerts(alerts []models.SitewideAlert, now time.Time) []models.SitewideAlert {
	out := make([]models.SitewideAlert, 0, len(alerts))
	for _, a := range alerts {
		if AlertIsLive(a, now) {
			out = append(out, a)
		}
	}
	return out
}
