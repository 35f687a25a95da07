package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/talgya/flyin/internal/agents"
	"github.com/talgya/flyin/internal/config"
	"github.com/talgya/flyin/internal/engine"
	"github.com/talgya/flyin/internal/mapfile"
	"github.com/talgya/flyin/internal/render"
	"github.com/talgya/flyin/internal/routing"
)

var (
	runColor    string
	runMaxTurns int
)

var runCmd = &cobra.Command{
	Use:   "run <map>",
	Short: "Simulate a map and print every turn",
	Long: `Load a map, route every drone along one shared shortest path and run
the simulation until all drones have arrived.

Each turn that has movement prints one line of space-separated events:
  D1-B       drone D1 entered hub B
  D1-A-B     drone D1 entered restricted hub B from A
  D1-B       drone D1 waited out a restricted turn at B
The run ends with "Turns: <n>".`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runColor, "color", "", "color hub names: auto, always, never (default from config)")
	runCmd.Flags().IntVar(&runMaxTurns, "max-turns", 0, "stop after this many turns, 0 for no limit (default from config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = runColor
	}
	if cmd.Flags().Changed("max-turns") {
		cfg.Simulation.MaxTurns = runMaxTurns
	}

	logger := slog.Default().With("run_id", uuid.NewString())

	logger.Info("reading map", "path", args[0])
	sc, err := mapfile.ParseFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("map loaded",
		"hubs", sc.Graph.HubCount(),
		"links", sc.Graph.LinkCount(),
		"drones", sc.Drones,
		"start", sc.Start,
		"end", sc.End,
	)

	router := routing.NewAStar()
	drones := agents.NewSpawner().Spawn(sc.Drones, sc.Start, sc.End)
	agents.SeedPaths(drones, router.FindPath(sc.Graph, sc.Start, sc.End, nil))

	out := cmd.OutOrStdout()
	renderer, err := newRenderer(cfg.Output.Color, out)
	if err != nil {
		return err
	}

	eng := engine.NewEngine()
	eng.MaxTurns = cfg.Simulation.MaxTurns
	eng.Logger = logger
	eng.Sink = &render.LineSink{W: out, Renderer: renderer, Graph: sc.Graph}

	turns, err := eng.Run(engine.NewSimulation(sc.Graph, router, drones))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, render.Summary(turns))
	return err
}

// newRenderer picks the renderer for a color mode. "auto" colors only when
// w is a terminal.
func newRenderer(mode string, w io.Writer) (*render.Renderer, error) {
	switch mode {
	case "always":
		return render.NewStyled(w), nil
	case "never":
		return render.NewPlain(), nil
	case "auto", "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return render.NewStyled(w), nil
		}
		return render.NewPlain(), nil
	default:
		return nil, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
}
