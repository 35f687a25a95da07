package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/flyin/internal/engine"
	"github.com/talgya/flyin/internal/mapfile"
	"github.com/talgya/flyin/internal/routing"
)

var routeCmd = &cobra.Command{
	Use:   "route <map>",
	Short: "Print the shortest start-to-end path of a map",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	sc, err := mapfile.ParseFile(args[0])
	if err != nil {
		return err
	}

	path := routing.NewAStar().FindPath(sc.Graph, sc.Start, sc.End, nil)
	if path == nil {
		return fmt.Errorf("%s -> %s: %w", sc.Start, sc.End, engine.ErrNoRoute)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(path, " -> "))
	fmt.Fprintf(out, "Hops: %d\n", len(path)-1)
	fmt.Fprintf(out, "Cost: %d\n", routing.PathCost(sc.Graph, path))
	return nil
}
