package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talgya/flyin/internal/config"
	"github.com/talgya/flyin/internal/mapfile"
	"github.com/talgya/flyin/internal/world"
)

var (
	genWidth  int
	genHeight int
	genSeed   int64
	genDrones int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a procedurally generated map",
	Long: `Lay hubs out on a grid and assign each hub a zone from a simplex noise
field. The start hub is the top-left corner and the end hub the
bottom-right corner. The same seed always produces the same map.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genWidth, "width", 0, "hubs per row (default from config)")
	generateCmd.Flags().IntVar(&genHeight, "height", 0, "hubs per column (default from config)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "noise seed, 0 for random (default from config)")
	generateCmd.Flags().IntVar(&genDrones, "drones", 0, "nb_drones of the generated map (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Generate.Width = genWidth
	}
	if flags.Changed("height") {
		cfg.Generate.Height = genHeight
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if flags.Changed("drones") {
		cfg.Generate.Drones = genDrones
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return config.ValidationErrors(errs)
	}

	gen, err := world.Generate(cfg.Generate.World())
	if err != nil {
		return err
	}

	counts := world.ZoneCounts(gen.Graph)
	slog.Info("map generated",
		"seed", gen.Seed,
		"hubs", gen.Graph.HubCount(),
		"links", gen.Graph.LinkCount(),
		"priority", counts[world.ZonePriority],
		"restricted", counts[world.ZoneRestricted],
		"blocked", counts[world.ZoneBlocked],
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# generated %dx%d, seed %d\n", cfg.Generate.Width, cfg.Generate.Height, gen.Seed)
	return mapfile.Write(out, &mapfile.Scenario{
		Graph:  gen.Graph,
		Start:  gen.Start,
		End:    gen.End,
		Drones: cfg.Generate.Drones,
	})
}
