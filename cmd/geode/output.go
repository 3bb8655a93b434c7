package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-geode/internal/logger"
	"github.com/napolitain/solver-geode/internal/solver"
	"github.com/napolitain/solver-geode/internal/solver/geode"
)

func printResults(results []*geode.Result) {
	logger.Section("📊 Results")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Blueprint", "Geodes", "Quality", "Expanded", "Leaves", "Pruned", "Memo Hits", "Frontier", "Time"}),
	)

	for _, r := range results {
		row := []string{
			fmt.Sprintf("%d", r.BlueprintID),
			fmt.Sprintf("%d", r.Geodes),
			fmt.Sprintf("%d", r.BlueprintID*r.Geodes),
			fmt.Sprintf("%d", r.Stats.Expanded),
			fmt.Sprintf("%d", r.Stats.Leaves),
			fmt.Sprintf("%d", r.Stats.Pruned),
			fmt.Sprintf("%d", r.Stats.MemoHits),
			fmt.Sprintf("%d", r.Stats.MaxFrontier),
			formatElapsed(r.Elapsed),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}

func printPath(r *geode.Result) {
	logger.Section(fmt.Sprintf("🔧 Blueprint %d build order", r.BlueprintID))
	if len(r.Path) == 0 {
		fmt.Println("   (no bot is worth building)")
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Bot", "Ready at", "Runs for"}),
	)
	for i, s := range r.Path {
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			s.Bot.String(),
			fmt.Sprintf("%d", s.Minute),
			fmt.Sprintf("%d", r.Horizon-s.Minute),
		})
	}
	_ = table.Render()
}

func printSummary(results []*geode.Result) {
	successColor := color.New(color.FgGreen, color.Bold)

	logger.Section("🎯 Summary")
	logger.Stats("blueprints", len(results))
	logger.Stats("quality level", solver.QualityLevel(results))
	logger.Stats("geode product", solver.GeodeProduct(results))

	best := -1
	bestID := 0
	for _, r := range results {
		if r.Geodes > best {
			best, bestID = r.Geodes, r.BlueprintID
		}
	}
	if best >= 0 {
		successColor.Printf("\n✓ Best blueprint: %d with %d geodes\n\n", bestID, best)
	}
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return d.Round(100 * time.Microsecond).String()
}
