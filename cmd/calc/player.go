package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

func newPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <name>",
		Short: "Fetch a player record and show the inferred levels and boosts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}

			state, err := svc.PlayerBoosts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printInferred(state)
			return nil
		},
	}
}

func printInferred(state *domain.InferredState) {
	headerColor.Printf("\n%s", state.Username)
	if state.ClanName != "" {
		headerColor.Printf(" [%s]", state.ClanName)
	}
	fmt.Println()
	fmt.Println()

	table := newTable("Activity", "Level", "XP", "Tool", "Cape", "Outfit", "Scrolls (T1/T2/T3)")
	for _, key := range domain.AllActivities {
		sel := state.Selections[key]
		appendRow(table,
			activityTitle(key),
			strconv.Itoa(state.Levels[key]),
			fmt.Sprintf("%.0f", state.Experience[key]),
			sel.Tool,
			sel.SkillCape,
			strconv.Itoa(sel.OutfitPieces),
			fmt.Sprintf("%d/%d/%d", sel.T1Scrolls, sel.T2Scrolls, sel.T3Scrolls),
		)
	}
	renderTable(table)

	fmt.Println()
	fmt.Printf("   Clan house:      %s\n", state.General.ClanHouse)
	fmt.Printf("   Personal house:  %s\n", state.General.PersonalHouse)
	if state.MalformedUpgrades {
		warnColor.Println("   Upgrade data was malformed; upgrades were not inferred")
	}
}
