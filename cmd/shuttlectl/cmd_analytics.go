package main

import (
	"fmt"
	"io"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	analyticsRange     string
	analyticsShowChart bool
)

// analyticsCmd prints the same numbers as GET /admin/analytics
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Print sales analytics for a time window",
	Long: `Reads orders straight off the pgx pool and prints total sales, paid
order count, average order value and units for the window.

Ranges: today, 7d, mtd, 30d, 90d, 365d, all`,
	RunE: runAnalytics,
}

func init() {
	analyticsCmd.Flags().StringVarP(&analyticsRange, "range", "r", string(models.RangeLast30Days), "time window")
	analyticsCmd.Flags().BoolVar(&analyticsShowChart, "chart", false, "print the daily revenue series")
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	defer connectDB()()

	timeRange := services.ParseTimeRange(analyticsRange)
	now := time.Now().In(app.StoreLocation())

	var since *time.Time
	if cutoff, ok := services.RangeStart(timeRange, now); ok {
		since = &cutoff
	}

	ctx, cancel := config.WithCustomTimeout(time.Minute)
	defer cancel()

	orders, err := services.LoadAnalyticsOrders(ctx, config.Pool, since)
	if err != nil {
		return err
	}

	renderAnalytics(cmd.OutOrStdout(), services.ComputeAnalytics(orders, timeRange, now), analyticsShowChart)
	return nil
}

func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func renderAnalytics(w io.Writer, data models.AnalyticsData, chart bool) {
	fmt.Fprintln(w, headingStyle.Render("Analytics ("+string(data.TimeRange)+")"))
	if data.WindowStart != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("since:      "), data.WindowStart.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("total sales:"), money(data.TotalSales))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("orders:     "), data.TotalOrders)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("avg order:  "), money(data.AverageOrderValue))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("units:      "), data.TotalUnits)

	if !chart {
		return
	}
	for _, day := range data.Chart {
		fmt.Fprintf(w, "  %s  %s\n", day.Date, money(day.Revenue))
	}
}
