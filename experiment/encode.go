package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []*Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []*Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}

	return enc.Close()
}

// WriteText writes one aligned row per result with the headline metrics.
func WriteText(w io.Writer, results []*Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tNODES\tEDGES\tAVG STATE\tVARIANCE\tCLUSTERING\tCOMPONENTS\tRUN ID")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\t%.6f\t%.6f\t%d\t%s\n",
			r.Seed,
			r.Report.NumberOfNodes,
			r.Report.NumberOfEdges,
			r.Report.AverageState,
			r.Report.StateVariance,
			r.Report.AverageClustering,
			r.GraphReport.ConnectedComponents,
			r.RunID,
		)
	}

	return tw.Flush()
}
