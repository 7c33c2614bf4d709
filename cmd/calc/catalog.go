package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

func newLevelsCmd() *cobra.Command {
	var xp float64

	cmd := &cobra.Command{
		Use:   "levels [level...]",
		Short: "Show the experience required for levels, or locate an experience total",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("xp") {
				p, err := svc.Progress(xp)
				if err != nil {
					return err
				}
				headerColor.Printf("\n%.0f XP is level %d\n", xp, p.Level)
				if p.NextLevel > 0 {
					fmt.Printf("   %d XP to level %d\n", p.XPToNext, p.NextLevel)
				}
				return nil
			}

			levels := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid level %q", arg)
				}
				levels = append(levels, n)
			}
			if len(levels) == 0 {
				levels = append(levels, domain.MinLevel)
				for l := 10; l <= domain.MaxLevel; l += 10 {
					levels = append(levels, l)
				}
				levels = append(levels, domain.TrueMasterLevel)
			}

			table := newTable("Level", "XP Required")
			for _, l := range levels {
				info, err := svc.Level(l)
				if err != nil {
					return err
				}
				appendRow(table, strconv.Itoa(info.Level), strconv.FormatInt(info.XPRequired, 10))
			}
			renderTable(table)
			return nil
		},
	}
	cmd.Flags().Float64Var(&xp, "xp", 0, "experience total to locate")
	return cmd
}

func newActivitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List the activities in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}

			table := newTable("Key", "Name", "Items", "Outfit Pieces")
			for _, a := range svc.Activities() {
				appendRow(table, string(a.Key), a.Name, strconv.Itoa(len(a.Items)), strconv.Itoa(a.MaxOutfitPieces))
			}
			renderTable(table)
			return nil
		},
	}
}

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <activity>",
		Short: "List the items of one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}

			activity, err := svc.Activity(domain.ActivityKey(args[0]))
			if err != nil {
				return err
			}

			headerColor.Printf("\n%s\n\n", activity.Name)
			table := newTable("Item", "Level", "XP", "Seconds", "Gold")
			for _, item := range activity.Items {
				appendRow(table,
					item.Name,
					strconv.Itoa(item.Level),
					fmt.Sprintf("%.2f", item.Exp),
					fmt.Sprintf("%.2f", item.Seconds),
					fmt.Sprintf("%.0f", item.GoldValue),
				)
			}
			renderTable(table)
			return nil
		},
	}
}
