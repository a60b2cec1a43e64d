package models

import "time"

// TimeRange selects the analytics window.
type TimeRange string

const (
	RangeToday       TimeRange = "today"
	RangeLast7Days   TimeRange = "7d"
	RangeMonthToDate TimeRange = "mtd"
	RangeLast30Days  TimeRange = "30d"
	RangeLast90Days  TimeRange = "90d"
	RangeLast365Days TimeRange = "365d"
	RangeAll         TimeRange = "all"
)

// AnalyticsData is the getAnalyticsData payload for one window.
type AnalyticsData struct {
	TimeRange         TimeRange      `json:"time_range"`
	WindowStart       *time.Time     `json:"window_start,omitempty"` // nil for "all"
	TotalSales        float64        `json:"total_sales"`            // paid orders only
	TotalOrders       int            `json:"total_orders"`           // paid orders only
	AverageOrderValue float64        `json:"average_order_value"`
	TotalUnits        int            `json:"total_units"`
	Chart             []DailyRevenue `json:"chart"`
	GeneratedAt       time.Time      `json:"generated_at"`
}

type DailyRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD in the store's timezone
	Revenue float64 `json:"revenue"`
}
