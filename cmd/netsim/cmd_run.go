package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/resilience/config"
	"github.com/katalvlaran/resilience/experiment"
	"github.com/katalvlaran/resilience/logging"
	"github.com/katalvlaran/resilience/store"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a network, simulate the dynamics and report metrics",
		Long: `Run one experiment, or one per seed when --seeds is given.

Settings are layered: built-in defaults, then --config, then NETSIM_*
environment variables, then the flags below.`,
		Example: `  netsim run --nodes 100 --p 0.05 --steps 100 --seed 42
  netsim run --config experiment.yaml --seeds 1,2,3 --json
  netsim run --topology cycle --nodes 20 --noise 0 --db runs.db`,
		Args: cobra.NoArgs,
		RunE: runExperiment,
	}

	f := cmd.Flags()
	f.String("config", "", "YAML configuration file")
	f.Int("nodes", 0, "Number of nodes")
	f.Float64("p", 0, "Edge probability")
	f.Int("steps", 0, "Number of time steps")
	f.Int64("seed", 0, "Random seed")
	f.Int64Slice("seeds", nil, "Run once per seed (comma separated)")
	f.Float64("weight-low", 0, "Lower bound of edge weights")
	f.Float64("weight-high", 0, "Upper bound of edge weights (exclusive)")
	f.Float64("noise", 0, "Standard deviation of the per-step noise")
	f.String("topology", "", "Network topology: random, complete, cycle, star, empty")
	f.String("log-level", "", "Log level: debug, info, warn, error")
	f.String("log-format", "", "Log format: text, json")
	f.String("trace", "", "Append one JSONL line per simulated step to this file")
	f.String("db", "", "Record runs in this SQLite database")
	f.Bool("yaml", false, "Output as YAML")

	return cmd
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewFormatLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	opts := []experiment.Option{experiment.WithLogger(logger)}

	tracer, err := logging.NewStepTracer(cfg.Logging.TracePath)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	defer tracer.Close()
	if tracer != nil {
		opts = append(opts, experiment.WithTracer(tracer))
	}

	if cfg.Store.DBPath != "" {
		st, err := store.NewSQLiteStore(cfg.Store.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, experiment.WithStore(st))
	}

	results, err := experiment.RunBatch(cmd.Context(), cfg, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	jsonOut, _ := cmd.Flags().GetBool("json")
	yamlOut, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOut:
		return experiment.WriteJSON(out, results)
	case yamlOut:
		return experiment.WriteYAML(out, results)
	default:
		return experiment.WriteText(out, results)
	}
}

// applyRunFlags overrides cfg with every flag set on the command line.
func applyRunFlags(f *pflag.FlagSet, cfg *config.Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}

	set("nodes", func() (e error) { cfg.Network.Nodes, e = f.GetInt("nodes"); return })
	set("p", func() (e error) { cfg.Network.PConnect, e = f.GetFloat64("p"); return })
	set("steps", func() (e error) { cfg.Dynamics.TimeSteps, e = f.GetInt("steps"); return })
	set("seed", func() (e error) { cfg.Seed, e = f.GetInt64("seed"); return })
	set("seeds", func() (e error) { cfg.Seeds, e = f.GetInt64Slice("seeds"); return })
	set("weight-low", func() (e error) { cfg.Network.WeightRange[0], e = f.GetFloat64("weight-low"); return })
	set("weight-high", func() (e error) { cfg.Network.WeightRange[1], e = f.GetFloat64("weight-high"); return })
	set("noise", func() (e error) { cfg.Dynamics.NoiseSigma, e = f.GetFloat64("noise"); return })
	set("topology", func() (e error) { cfg.Network.Topology, e = f.GetString("topology"); return })
	set("log-level", func() (e error) { cfg.Logging.Level, e = f.GetString("log-level"); return })
	set("log-format", func() (e error) { cfg.Logging.Format, e = f.GetString("log-format"); return })
	set("trace", func() (e error) { cfg.Logging.TracePath, e = f.GetString("trace"); return })
	set("db", func() (e error) { cfg.Store.DBPath, e = f.GetString("db"); return })

	return err
}
