package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// TasksStatsCmd prints task counts
type TasksStatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the stats command
func (s *TasksStatsCmd) Run(cli *CLI) error {
	if err := loadTasks(context.Background(), cli.Container); err != nil {
		return err
	}
	stats := cli.Container.TaskStore.Stats()

	if s.Format == "json" {
		data, err := json.MarshalIndent(map[string]int{
			"completed": stats.Completed,
			"overdue":   stats.Overdue,
			"pending":   stats.Pending,
			"total":     stats.Completed + stats.Pending,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Pending\t%d\n", stats.Pending)
	fmt.Fprintf(w, "Done\t%d\n", stats.Completed)
	fmt.Fprintf(w, "Overdue\t%d\n", stats.Overdue)
	fmt.Fprintf(w, "Total\t%d\n", stats.Completed+stats.Pending)
	return w.Flush()
}
