// Command shuttlectl is the operator CLI for the Sticker Shuttle back office.
package main

import (
	"fmt"
	"os"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	app config.AppConfig

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD713"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shuttlectl",
	Short: "Sticker Shuttle back office tools",
	Long: `shuttlectl runs back office jobs against the same database and rules
as the CMS API.

Available subcommands:
  seed      - Insert demo orders for local development
  analytics - Print sales analytics for a time window
  track     - Resolve a tracking number to a carrier page
  status    - Show the derived display status of one order`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		app = config.Load()
		config.InitLogger(app.AppEnv)

		policy, err := config.ResolvePolicy(app)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		services.ConfigureSamplePacks(services.NewSamplePackMatcher(policy.SamplePack))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		config.SyncLogger()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd, analyticsCmd, trackCmd, statusCmd)
}

// connectDB opens both database handles for commands that need them.
func connectDB() func() {
	config.InitDB(app)
	return config.CloseDB
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
