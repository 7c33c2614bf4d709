package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/domain"
)

func newCalculateCmd() *cobra.Command {
	var (
		req       calculator.Request
		activity  string
		selection = domain.DefaultBoostSelection()
		general   = domain.DefaultGeneralBuffs()
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate rates for one item",
		Example: `  calc calculate --activity mining --item "Iron Ore"
  calc calculate --activity woodcutting --item "Oak Log" --tool t5 --xp 150000 --target 90`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}

			req.Activity = domain.ActivityKey(activity)
			req.Selection = &selection
			req.General = &general

			result, err := svc.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&activity, "activity", "a", "", "activity key (e.g. mining)")
	f.StringVarP(&req.Item, "item", "i", "", "item name")
	f.Float64Var(&req.CurrentExperience, "xp", 0, "current experience")
	f.IntVar(&req.TargetLevel, "target", domain.DefaultTargetLevel, "target level (1-121)")

	f.StringVar(&selection.Tool, "tool", selection.Tool, "tool tier key")
	f.StringVar(&selection.SkillCape, "cape", selection.SkillCape, "skill cape tier key")
	f.StringVar(&selection.Consumable, "consumable", selection.Consumable, "consumable tier key")
	f.IntVar(&selection.OutfitPieces, "outfit", 0, "outfit pieces worn")
	f.IntVar(&selection.T1Scrolls, "t1", 0, "tier 1 scrolls")
	f.IntVar(&selection.T2Scrolls, "t2", 0, "tier 2 scrolls")
	f.IntVar(&selection.T3Scrolls, "t3", 0, "tier 3 scrolls")
	f.BoolVar(&selection.XPBoost, "xp-boost", false, "apply the experience boost")

	f.StringVar(&general.ClanHouse, "clan-house", general.ClanHouse, "clan house tier key")
	f.StringVar(&general.PersonalHouse, "personal-house", general.PersonalHouse, "personal house tier key")
	f.BoolVar(&general.OfferTheyCanRefuse, "offer", false, "An Offer They Can't Refuse upgrade")

	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func printResult(r *domain.RateResult) {
	headerColor.Printf("\n%s: %s\n\n", activityTitle(r.Activity), r.ItemName)

	table := newTable("", "Base", "Boosted")
	appendRow(table, "Experience", fmt.Sprintf("%.2f", r.BaseXP), fmt.Sprintf("%.2f", r.BoostedXP))
	if r.Instant {
		appendRow(table, "Time", "instant", "instant")
	} else {
		appendRow(table, "Time", fmt.Sprintf("%.2fs", r.BaseTime), fmt.Sprintf("%.2fs", r.BoostedTime))
	}
	if r.HasGold {
		appendRow(table, "Gold", fmt.Sprintf("%.2f", r.BaseGold), fmt.Sprintf("%.2f", r.BoostedGold))
	} else {
		appendRow(table, "Gold", "n/a", "n/a")
	}
	renderTable(table)

	fmt.Println()
	fmt.Printf("   XP boost:        %.1f%% (%.1f%% with boost)\n", r.XPBoostBase, r.XPBoostWithFlag)
	fmt.Printf("   Time reduction:  %.1f%%\n", r.TimeReductionPercent)
	fmt.Printf("   Gold boost:      %.1f%%\n", r.GoldBoostPercent)

	if !r.Instant {
		fmt.Println()
		fmt.Printf("   XP/hour:         %.0f (%.0f with boost)\n", r.XPPerHour, r.XPPerHourWithFlag)
		fmt.Printf("   Tasks/hour:      %d\n", r.TasksPerHour)
		if r.HasGold {
			fmt.Printf("   Gold/hour:       %.0f\n", r.GoldPerHour)
		}
	}

	fmt.Println()
	successColor.Printf("Level %d: %.0f XP needed, %d repetitions", r.TargetLevel, r.XPNeeded, r.RepetitionsNeeded)
	if !r.Instant {
		successColor.Printf(", %s", formatDuration(r.TotalTime))
	}
	fmt.Println()
	if r.HasGold {
		fmt.Printf("   Gold earned:     %.0f\n", r.TotalGold)
	}
}
