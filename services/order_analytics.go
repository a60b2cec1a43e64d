package services

import (
	"strings"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// ParseTimeRange normalises a window selector. Unknown values mean "all".
func ParseTimeRange(raw string) models.TimeRange {
	switch r := models.TimeRange(strings.ToLower(strings.TrimSpace(raw))); r {
	case models.RangeToday, models.RangeLast7Days, models.RangeMonthToDate,
		models.RangeLast30Days, models.RangeLast90Days, models.RangeLast365Days:
		return r
	default:
		return models.RangeAll
	}
}

// RangeStart returns the window's first instant in now's location. A
// trailing "Nd" window spans N calendar days including today. ok is false
// for "all".
func RangeStart(r models.TimeRange, now time.Time) (start time.Time, ok bool) {
	today := startOfDay(now)
	switch r {
	case models.RangeToday:
		return today, true
	case models.RangeLast7Days:
		return today.AddDate(0, 0, -6), true
	case models.RangeMonthToDate:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case models.RangeLast30Days:
		return today.AddDate(0, 0, -29), true
	case models.RangeLast90Days:
		return today.AddDate(0, 0, -89), true
	case models.RangeLast365Days:
		return today.AddDate(0, 0, -364), true
	default:
		return time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OrderTimestamp prefers the storefront's order_created_at over the row's created_at.
func OrderTimestamp(o models.Order) time.Time {
	if o.OrderCreatedAt != nil && !o.OrderCreatedAt.IsZero() {
		return *o.OrderCreatedAt
	}
	return o.CreatedAt
}

// IsPaid reports whether the order counts toward revenue.
func IsPaid(o models.Order) bool {
	return strings.EqualFold(strings.TrimSpace(o.FinancialStatus), "paid")
}

// FilterOrdersByRange keeps orders placed at or after the window start.
func FilterOrdersByRange(orders []models.Order, r models.TimeRange, now time.Time) []models.Order {
	start, ok := RangeStart(r, now)
	if !ok {
		return orders
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !OrderTimestamp(o).Before(start) {
			out = append(out, o)
		}
	}
	return out
}

// ComputeAnalytics aggregates paid orders in the window and builds a
// zero-filled daily revenue series ending today.
func ComputeAnalytics(orders []models.Order, r models.TimeRange, now time.Time) models.AnalyticsData {
	loc := now.Location()
	filtered := FilterOrdersByRange(orders, r, now)

	revenue := decimal.Zero
	paidCount := 0
	units := 0
	perDay := make(map[string]decimal.Decimal)
	var earliest time.Time

	for _, o := range filtered {
		if !IsPaid(o) {
			continue
		}
		amount := decimal.NewFromFloat(o.TotalPrice)
		revenue = revenue.Add(amount)
		paidCount++
		units += TotalUnits(o.Items)

		ts := OrderTimestamp(o).In(loc)
		key := ts.Format(dayLayout)
		perDay[key] = perDay[key].Add(amount)
		if earliest.IsZero() || ts.Before(earliest) {
			earliest = ts
		}
	}

	aov := decimal.Zero
	if paidCount > 0 {
		aov = revenue.Div(decimal.NewFromInt(int64(paidCount)))
	}

	data := models.AnalyticsData{
		TimeRange:         r,
		TotalSales:        revenue.Round(2).InexactFloat64(),
		TotalOrders:       paidCount,
		AverageOrderValue: aov.Round(2).InexactFloat64(),
		TotalUnits:        units,
		GeneratedAt:       now,
	}

	today := startOfDay(now)
	chartStart, ok := RangeStart(r, now)
	if ok {
		data.WindowStart = &chartStart
	} else {
		chartStart = today
		if !earliest.IsZero() && earliest.Before(today) {
			chartStart = startOfDay(earliest)
		}
	}

	data.Chart = make([]models.DailyRevenue, 0, int(today.Sub(chartStart).Hours()/24)+1)
	for day := chartStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayLayout)
		data.Chart = append(data.Chart, models.DailyRevenue{
			Date:    key,
			Revenue: perDay[key].Round(2).InexactFloat64(),
		})
	}

	return data
}
