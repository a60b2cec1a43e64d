package main

import (
	"fmt"
	"io"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/spf13/cobra"
)

// statusCmd shows how the admin list would label one order
var statusCmd = &cobra.Command{
	Use:   "status [order id]",
	Short: "Show the derived display status of one order",
	Long: `Loads the order with its items and prints the display status, the raw
status fields it was derived from, grouped line items and tracking.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	defer connectDB()()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.FindOrder(ctx, config.DB, args[0])
	if err != nil {
		return err
	}

	renderOrder(cmd.OutOrStdout(), services.BuildOrderView(*order))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func renderOrder(w io.Writer, view models.OrderView) {
	fmt.Fprintln(w, headingStyle.Render("Order "+view.DisplayNumber+"  "+string(view.DisplayStatus)))
	fmt.Fprintf(w, "%s %s %s\n", labelStyle.Render("customer:   "), view.CustomerFirstName, view.CustomerLastName)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("order:      "), view.OrderStatus)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("proof:      "), deref(view.ProofStatus))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("fulfillment:"), view.FulfillmentStatus)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("total:      "), money(view.TotalPrice))
	if view.IsSamplePack {
		fmt.Fprintln(w, labelStyle.Render("sample pack"))
	}
	for _, item := range view.GroupedItems {
		fmt.Fprintf(w, "  %dx %s\n", item.TotalQuantity, item.ProductName)
	}
	if view.Tracking != nil {
		fmt.Fprintf(w, "%s %s %s\n", labelStyle.Render("tracking:   "), view.Tracking.Carrier, view.Tracking.URL)
	}
}
