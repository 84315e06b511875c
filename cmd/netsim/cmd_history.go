package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/resilience/config"
	"github.com/katalvlaran/resilience/store"
)

var errNoDatabase = errors.New("no run database: pass --db or set " + config.EnvDBPath)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs, or show one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			if dbPath == "" {
				cfg, err := config.Load("")
				if err != nil {
					return err
				}
				dbPath = cfg.Store.DBPath
			}
			if dbPath == "" {
				return errNoDatabase
			}

			st, err := store.NewSQLiteStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				rec, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			limit, _ := cmd.Flags().GetInt("limit")
			recs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(out).Encode(recs)
			}
			if len(recs) == 0 {
				_, err := fmt.Fprintln(out, "No runs recorded.")
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CREATED\tID\tSEED\tTOPOLOGY\tNODES\tEDGES\tAVG STATE\tVARIANCE")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d\t%.6f\t%.6f\n",
					r.CreatedAt.Local().Format(time.DateTime),
					r.ID,
					r.Seed,
					r.Topology,
					r.Nodes,
					r.Report.NumberOfEdges,
					r.Report.AverageState,
					r.Report.StateVariance,
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().String("db", "", "SQLite database written by 'netsim run --db'")
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 for all)")

	return cmd
}
