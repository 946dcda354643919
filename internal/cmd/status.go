package cmd

import (
	"context"
	"fmt"
)

// StatusCmd prints task counts on one line for status bars
type StatusCmd struct{}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	if err := cli.Container.TaskStore.Load(context.Background()); err != nil {
		// Status bars cannot show errors
		fmt.Print("☐:? ⚠:? ☑:?")
		return nil
	}

	stats := cli.Container.TaskStore.Stats()
	fmt.Printf("☐:%d ⚠:%d ☑:%d", stats.Pending, stats.Overdue, stats.Completed)
	return nil
}
