package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"track", "9400 1000 0000 0000 0000 00"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Tracking 9400100000000000000000")
	assert.Contains(t, out.String(), services.CarrierUSPS)
	assert.NotContains(t, out.String(), "using UPS")
}

func TestRenderTrackingFallback(t *testing.T) {
	var out bytes.Buffer
	renderTracking(&out, services.ResolveTracking("not-a-real-number", ""))

	assert.Contains(t, out.String(), services.CarrierUPS)
	assert.Contains(t, out.String(), "carrier not recognized")
}

func TestRenderAnalytics(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	data := models.AnalyticsData{
		TimeRange:         models.RangeMonthToDate,
		WindowStart:       &start,
		TotalSales:        150,
		TotalOrders:       2,
		AverageOrderValue: 75,
		TotalUnits:        10,
		Chart: []models.DailyRevenue{
			{Date: "2025-06-01", Revenue: 100},
			{Date: "2025-06-02", Revenue: 50},
		},
	}

	t.Run("summary only", func(t *testing.T) {
		var out bytes.Buffer
		renderAnalytics(&out, data, false)

		assert.Contains(t, out.String(), "2025-06-01")
		assert.Contains(t, out.String(), "$150.00")
		assert.Contains(t, out.String(), "$75.00")
		assert.NotContains(t, out.String(), "$50.00")
	})

	t.Run("with chart", func(t *testing.T) {
		var out bytes.Buffer
		renderAnalytics(&out, data, true)
		assert.Contains(t, out.String(), "2025-06-02  $50.00")
	})
}

func TestDemoOrdersCoverStatuses(t *testing.T) {
	matcher := services.DefaultSamplePackMatcher()
	seen := map[models.DisplayStatus]bool{}
	for _, o := range demoOrders(time.Now()) {
		seen[services.DeriveOrderStatus(o, matcher)] = true
	}

	for _, want := range []models.DisplayStatus{
		models.StatusBuildingProof,
		models.StatusAwaitingApproval,
		models.StatusPrinting,
		models.StatusLabelCreated,
		models.StatusDelivered,
		models.StatusPackaging,
	} {
		assert.True(t, seen[want], "no demo order derives %q", want)
	}
}

func TestRenderOrderGroupsItems(t *testing.T) {
	order := demoOrders(time.Now())[1]
	var out bytes.Buffer
	renderOrder(&out, services.BuildOrderView(order))

	assert.Contains(t, out.String(), "Awaiting Approval")
	assert.Contains(t, out.String(), "50x Holographic Stickers")
}
