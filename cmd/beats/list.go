package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-beats/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available charts",
	Long:  `Shows a list of all chart generators.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	charts := registry.List()

	if len(charts) == 0 {
		fmt.Println("No charts available.")
		return
	}

	fmt.Println("Available charts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range charts {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, c := range charts {
		title := c.Title
		if c.ID == registry.DefaultChart {
			title += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, title)
	}

	fmt.Println()
	fmt.Println("Run 'beats play <id>' to play a chart.")
}
