package services

import (
	"testing"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNumber(t *testing.T) {
	assert.Equal(t, "SS-1001", DisplayNumber(models.Order{ID: "0190a1b2-aaaa", OrderNumber: strPtr("SS-1001")}))
	assert.Equal(t, "0190a1b2", DisplayNumber(models.Order{ID: "0190a1b2-aaaa-7000", OrderNumber: strPtr("  ")}))
	assert.Equal(t, "short", DisplayNumber(models.Order{ID: "short"}))
}

func TestBuildOrderView(t *testing.T) {
	order := models.Order{
		ID:             "0190a1b2-0000-7000-8000-000000000001",
		ProofStatus:    strPtr("approved"),
		TrackingNumber: strPtr("1Z999AA10123456784"),
		Items: []models.OrderItem{
			{ProductName: "Vinyl Stickers", Quantity: 50},
			{ProductName: "Vinyl Stickers", Quantity: 50},
		},
	}

	view := BuildOrderView(order)
	assert.Equal(t, "0190a1b2", view.DisplayNumber)
	assert.Equal(t, models.StatusLabelCreated, view.DisplayStatus)
	assert.Equal(t, StatusStyleFor(models.StatusLabelCreated), view.StatusStyle)
	assert.False(t, view.IsSamplePack)
	require.Len(t, view.GroupedItems, 1)
	assert.Equal(t, 100, view.GroupedItems[0].TotalQuantity)
	assert.Equal(t, 100, view.TotalUnits)
	require.NotNil(t, view.Tracking)
	assert.Equal(t, CarrierUPS, view.Tracking.Carrier)
}

func TestBuildOrderViewNilItems(t *testing.T) {
	view := BuildOrderView(models.Order{ID: "abc"})
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.GroupedItems)
	assert.Nil(t, view.Tracking)
	assert.Equal(t, models.StatusBuildingProof, view.DisplayStatus)
}

func TestConfigureSamplePacks(t *testing.T) {
	t.Cleanup(func() { ConfigureSamplePacks(DefaultSamplePackMatcher()) })

	order := models.Order{Items: []models.OrderItem{{SKU: "TRIAL-KIT"}}}
	assert.False(t, BuildOrderView(order).IsSamplePack)

	ConfigureSamplePacks(SamplePackMatcher{SKUs: []string{"TRIAL-KIT"}})
	view := BuildOrderView(order)
	assert.True(t, view.IsSamplePack)
	assert.Equal(t, models.StatusPackaging, view.DisplayStatus)
}

func sampleViews() []models.OrderView {
	day := func(d int) *time.Time {
		t := time.Date(2024, time.June, d, 12, 0, 0, 0, time.UTC)
		return &t
	}
	return BuildOrderViews([]models.Order{
		{ID: "a-000000001", OrderNumber: strPtr("SS-1"), TotalPrice: 20, OrderCreatedAt: day(1), CustomerEmail: "ada@example.com", CustomerFirstName: "Ada", CustomerLastName: "Lovelace"},
		{ID: "b-000000002", OrderNumber: strPtr("SS-2"), TotalPrice: 5, OrderCreatedAt: day(3), ProofStatus: strPtr("awaiting_approval"), CustomerEmail: "grace@example.com"},
		{ID: "c-000000003", OrderNumber: strPtr("SS-3"), TotalPrice: 50, OrderCreatedAt: day(2), ProofStatus: strPtr("awaiting_approval"), TrackingNumber: strPtr("EA123456789US")},
	})
}

func TestFilterViews(t *testing.T) {
	views := sampleViews()

	assert.Len(t, FilterViews(views, "", ""), 3)
	assert.Len(t, FilterViews(views, models.StatusAwaitingApproval, ""), 2)

	byName := FilterViews(views, "", "lovelace")
	require.Len(t, byName, 1)
	assert.Equal(t, "SS-1", byName[0].DisplayNumber)

	byTracking := FilterViews(views, models.StatusAwaitingApproval, "ea1234")
	require.Len(t, byTracking, 1)
	assert.Equal(t, "SS-3", byTracking[0].DisplayNumber)

	assert.Empty(t, FilterViews(views, models.StatusDelivered, ""))
}

func TestSortViews(t *testing.T) {
	numbers := func(vs []models.OrderView) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = v.DisplayNumber
		}
		return out
	}

	views := sampleViews()
	SortViews(views, "")
	assert.Equal(t, []string{"SS-2", "SS-3", "SS-1"}, numbers(views))

	SortViews(views, "oldest")
	assert.Equal(t, []string{"SS-1", "SS-3", "SS-2"}, numbers(views))

	SortViews(views, "total_desc")
	assert.Equal(t, []string{"SS-3", "SS-1", "SS-2"}, numbers(views))

	SortViews(views, "total_asc")
	assert.Equal(t, []string{"SS-2", "SS-1", "SS-3"}, numbers(views))
}

func TestPaginate(t *testing.T) {
	views := sampleViews()

	page, meta := Paginate(views, 1, 2)
	assert.Len(t, page, 2)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, meta)

	page, _ = Paginate(views, 2, 2)
	assert.Len(t, page, 1)

	page, meta = Paginate(views, 5, 2)
	assert.Empty(t, page)
	assert.Equal(t, 3, meta.Total)
}
