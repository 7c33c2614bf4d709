package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/config"
	"github.com/osse101/IdleRates_Go/internal/leveling"
	"github.com/osse101/IdleRates_Go/internal/profile"
)

var (
	profileAPI     string
	profileTimeout = config.DefaultProfileAPITimeout
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Idle Clans progression rate calculator",
		Long: `Computes experience, gold and time rates for a single item and the
effort needed to reach a target level, using the embedded catalogs.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&profileAPI, "api", config.DefaultProfileAPIBaseURL, "player record API base URL")

	rootCmd.AddCommand(
		newCalculateCmd(),
		newLevelsCmd(),
		newActivitiesCmd(),
		newItemsCmd(),
		newPlayerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService loads the embedded catalogs and wires a calculator over the player record API
func newService(ctx context.Context) (calculator.Service, error) {
	table, err := leveling.LoadDefault(ctx)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.LoadDefault(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.NewService(table, cat, profile.NewClient(profileAPI, profileTimeout)), nil
}
