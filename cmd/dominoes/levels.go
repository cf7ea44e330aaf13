package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Display every level in play order: start point, goal and wall count.

Examples:
  dominoes levels
  dominoes levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	levels, err := level.Load(flagLevels)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "ID", "Name", "Start", "Goal", "Walls")

	for i, l := range levels.Levels() {
		t.Row(
			strconv.Itoa(i+1),
			l.ID,
			l.Name,
			formatPoint(l.Anchor),
			fmt.Sprintf("%s r=%.1f", formatPoint(l.Goal.Center), l.Goal.Radius),
			strconv.Itoa(len(l.Walls)),
		)
	}

	fmt.Println(t.Render())
	fmt.Println()
	fmt.Println("Run 'dominoes play --level <#>' to start at a level.")
	return nil
}

func formatPoint(p core.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Z)
}
