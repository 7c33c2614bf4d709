package main

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

var titleCaser = cases.Title(language.English)

func activityTitle(key domain.ActivityKey) string {
	return titleCaser.String(string(key))
}

func newTable(header ...string) *tablewriter.Table {
	return tablewriter.NewTable(os.Stdout, tablewriter.WithHeader(header))
}

func appendRow(table *tablewriter.Table, cells ...string) {
	_ = table.Append(cells)
}

func renderTable(table *tablewriter.Table) {
	_ = table.Render()
}

// formatDuration renders seconds as days, hours and minutes
func formatDuration(seconds float64) string {
	if seconds <= 0 || math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return "0m"
	}
	total := int64(math.Round(seconds / 60))
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	minutes := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
