package main

import (
	"fmt"
	"io"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/spf13/cobra"
)

var trackCarrier string

// trackCmd resolves a tracking number without touching the database
var trackCmd = &cobra.Command{
	Use:   "track [tracking number]",
	Short: "Resolve a tracking number to a carrier page",
	Long: `Normalizes the tracking number, detects the carrier from its shape
(or uses --carrier when given) and prints the carrier's tracking URL.
Numbers no rule recognizes fall back to UPS.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackCarrier, "carrier", "", "carrier name, UPS, USPS or FedEx")
}

func runTrack(cmd *cobra.Command, args []string) error {
	if services.NormalizeTrackingNumber(args[0]) == "" {
		return fmt.Errorf("tracking number is empty")
	}
	renderTracking(cmd.OutOrStdout(), services.ResolveTracking(args[0], trackCarrier))
	return nil
}

func renderTracking(w io.Writer, link models.TrackingLink) {
	fmt.Fprintln(w, headingStyle.Render("Tracking "+link.Number))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("carrier:"), link.Carrier)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("url:    "), link.URL)
	if !link.Detected {
		fmt.Fprintln(w, labelStyle.Render("carrier not recognized, using UPS"))
	}
}
