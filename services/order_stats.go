package services

import (
	"math"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
)

// ComputeOrderStats counts orders per display label (every label present,
// zero-filled) and compares this calendar month with the last.
func ComputeOrderStats(orders []models.Order, matcher SamplePackMatcher, now time.Time) models.OrderStatsResponse {
	counts := make(map[models.DisplayStatus]int)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	lastMonth := monthStart.AddDate(0, -1, 0)

	var cur, prev int
	for _, o := range orders {
		counts[DeriveOrderStatus(o, matcher)]++

		ts := OrderTimestamp(o).In(now.Location())
		switch {
		case !ts.Before(monthStart) && ts.Before(nextMonth):
			cur++
		case !ts.Before(lastMonth) && ts.Before(monthStart):
			prev++
		}
	}

	res := models.OrderStatsResponse{
		TotalOrders:       len(orders),
		CurrentMonthTotal: cur,
		LastMonthTotal:    prev,
	}
	if prev > 0 {
		v := float64(cur-prev) / float64(prev) * 100
		v = math.Round(v*10) / 10
		res.ChangePercentFromLastMonth = &v
	}

	for _, s := range AllDisplayStatuses() {
		res.Breakdown = append(res.Breakdown, models.OrderStatsBreakdown{
			Status: s,
			Count:  counts[s],
			Style:  StatusStyleFor(s),
		})
	}
	return res
}
