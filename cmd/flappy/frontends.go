package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available frontends",
	Long:  `Shows the frontends that can be selected with 'flappy play --ui <name>'.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	frontends := registry.List()

	maxNameLen := len("Name")
	for _, f := range frontends {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, f.Name, f.Title)
	}
}
