package main

import (
	"fmt"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// seedCmd inserts demo orders
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo orders for local development",
	Long: `Migrates the schema and inserts a small set of demo orders spread across
the display statuses, plus a sample pack, so the admin UI has something to show.
Refuses to run when APP_ENV is production.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	if app.IsProduction() {
		return fmt.Errorf("refusing to seed a production database")
	}
	defer connectDB()()

	if err := config.Migrate(&models.Order{}, &models.OrderItem{}); err != nil {
		return err
	}

	orders := demoOrders(time.Now())
	if err := config.DB.Create(&orders).Error; err != nil {
		return fmt.Errorf("insert demo orders: %w", err)
	}

	config.Log.Info("[seed] inserted demo orders", zap.Int("count", len(orders)))
	fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render(fmt.Sprintf("Seeded %d orders", len(orders))))
	return nil
}

func ptr(s string) *string { return &s }

func demoItem(name, sku string, qty int, price float64) models.OrderItem {
	return models.OrderItem{
		ProductID:       sku,
		ProductName:     name,
		ProductCategory: "vinyl-stickers",
		SKU:             sku,
		Quantity:        qty,
		UnitPrice:       price,
		TotalPrice:      price * float64(qty),
		CalculatorSelections: datatypes.JSONMap{
			"cut":      map[string]any{"displayValue": "Custom Shape"},
			"material": map[string]any{"displayValue": "Matte"},
			"size":     map[string]any{"displayValue": `3"`},
		},
	}
}

// demoOrders builds orders that land on distinct display statuses.
func demoOrders(now time.Time) []models.Order {
	day := func(n int) *time.Time {
		t := now.AddDate(0, 0, -n)
		return &t
	}

	return []models.Order{
		{
			OrderNumber: ptr("SS-1001"), FinancialStatus: "paid", FulfillmentStatus: "unfulfilled",
			OrderStatus: "Creating Proofs", ProofStatus: ptr("building_proof"),
			CustomerFirstName: "Ava", CustomerLastName: "Reed", CustomerEmail: "ava@example.com",
			TotalPrice: 90, OrderCreatedAt: day(0),
			Items: []models.OrderItem{demoItem("Custom Vinyl Stickers", "SS-VINYL", 100, 0.9)},
		},
		{
			OrderNumber: ptr("SS-1002"), FinancialStatus: "paid", FulfillmentStatus: "unfulfilled",
			OrderStatus: "Proof Sent", ProofStatus: ptr("awaiting_approval"),
			CustomerFirstName: "Ben", CustomerLastName: "Ortiz", CustomerEmail: "ben@example.com",
			TotalPrice: 45, OrderCreatedAt: day(1),
			Items: []models.OrderItem{
				demoItem("Holographic Stickers", "SS-HOLO", 25, 1),
				demoItem("Holographic Stickers", "SS-HOLO", 25, 0.8),
			},
		},
		{
			OrderNumber: ptr("SS-1003"), FinancialStatus: "paid", FulfillmentStatus: "unfulfilled",
			OrderStatus: "Printing", ProofStatus: ptr("approved"),
			CustomerFirstName: "Cleo", CustomerLastName: "Park", CustomerEmail: "cleo@example.com",
			TotalPrice: 120, OrderCreatedAt: day(3),
			Items: []models.OrderItem{demoItem("Clear Stickers", "SS-CLEAR", 200, 0.6)},
		},
		{
			OrderNumber: ptr("SS-1004"), FinancialStatus: "paid", FulfillmentStatus: "partial",
			OrderStatus: "Shipped", ProofStatus: ptr("approved"),
			TrackingNumber: ptr("1Z999AA10123456784"), TrackingCompany: ptr("UPS"),
			TrackingURL:       ptr("https://www.ups.com/track?tracknum=1Z999AA10123456784"),
			CustomerFirstName: "Dev", CustomerLastName: "Shah", CustomerEmail: "dev@example.com",
			TotalPrice: 75, OrderCreatedAt: day(6),
			Items: []models.OrderItem{demoItem("Die Cut Stickers", "SS-DIECUT", 150, 0.5)},
		},
		{
			OrderNumber: ptr("SS-1005"), FinancialStatus: "paid", FulfillmentStatus: "fulfilled",
			OrderStatus: "Delivered", ProofStatus: ptr("approved"),
			CustomerFirstName: "Eli", CustomerLastName: "Nakamura", CustomerEmail: "eli@example.com",
			TotalPrice: 60, OrderCreatedAt: day(12),
			Items: []models.OrderItem{demoItem("Custom Vinyl Stickers", "SS-VINYL", 50, 1.2)},
		},
		{
			OrderNumber: ptr("SS-1006"), FinancialStatus: "paid", FulfillmentStatus: "unfulfilled",
			OrderStatus: "Processing",
			CustomerFirstName: "Fay", CustomerLastName: "Lund", CustomerEmail: "fay@example.com",
			TotalPrice: 9, OrderCreatedAt: day(2),
			Items: []models.OrderItem{demoItem("Sample Pack", "SS-SAMPLE-PACK", 1, 9)},
		},
		{
			OrderNumber: ptr("SS-1007"), FinancialStatus: "pending", FulfillmentStatus: "unfulfilled",
			OrderStatus: "Awaiting Payment",
			CustomerFirstName: "Gus", CustomerLastName: "Hale", CustomerEmail: "gus@example.com",
			TotalPrice: 30, OrderCreatedAt: day(0),
			Items: []models.OrderItem{demoItem("Custom Vinyl Stickers", "SS-VINYL", 25, 1.2)},
		},
	}
}
