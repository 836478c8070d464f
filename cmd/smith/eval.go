package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-smith/pkg/analysis"
	"github.com/edp1096/toy-smith/pkg/circuit"
	"github.com/edp1096/toy-smith/pkg/util"
)

var evalCmd = &cobra.Command{
	Use:   "eval <netlist|project.yaml>",
	Short: "Evaluate a chain and print its trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ckt, logger, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}

		analyzer := analysis.NewSmith().WithLogger(logger)
		if err := analyzer.Setup(ckt); err != nil {
			return fmt.Errorf("analysis setup failed: %w", err)
		}
		if err := analyzer.Execute(); err != nil {
			return fmt.Errorf("analysis execution failed: %w", err)
		}

		out := cmd.OutOrStdout()
		printSummary(out, ckt, analyzer.Result())
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			printTrace(out, analyzer.GetResults())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("trace", false, "Print every sample")
}

func getKeys(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printSummary(w io.Writer, ckt *circuit.Circuit, result *analysis.Result) {
	status := ckt.Status()

	fmt.Fprintf(w, "\n%s\n", ckt.Name())
	fmt.Fprintln(w, "================")
	fmt.Fprintf(w, "Frequency: %s  Z0: %s  Steps: %d\n",
		util.FormatFrequency(status.Frequency), util.FormatValueFactor(status.Z0, "Ohm"), status.Steps)

	load := result.Points[0]
	fmt.Fprintf(w, "\n%-4s %-28s %-26s %s\n", "#", "Element", "Z", "Gamma")
	fmt.Fprintln(w, "------------------------------------------------------------------------------")
	fmt.Fprintf(w, "%-4s %-28s %-26s %s\n", "-", "Load", util.FormatComplex(load.Z.Complex(), "Ohm"), util.FormatGamma("Gz", load.GammaZ))

	for i, seg := range result.Segments {
		end := result.Points[seg.Last]
		fmt.Fprintf(w, "%-4d %-28s %-26s %s\n", i+1, seg.Device.Describe(),
			util.FormatComplex(end.Z.Complex(), "Ohm"), util.FormatGamma("Gz", end.GammaZ))
	}

	final := result.Final
	fmt.Fprintln(w, "\nInput:")
	fmt.Fprintf(w, "  Z  = %s\n", util.FormatComplex(final.Z.Complex(), "Ohm"))
	fmt.Fprintf(w, "  Y  = %s\n", util.FormatComplex(final.Y.Complex(), "S"))
	fmt.Fprintf(w, "  %s\n", util.FormatGamma("Gz", final.GammaZ))
	fmt.Fprintf(w, "  %s\n", util.FormatGamma("Gy", final.GammaY))
}

func printTrace(w io.Writer, results map[string][]float64) {
	elements := results["ELEMENT"]
	fmt.Fprintf(w, "\nTrace (%d points):\n", len(elements))

	var columns []string
	for _, name := range getKeys(results) {
		if name == "ELEMENT" || name == "T" {
			continue
		}
		columns = append(columns, name)
	}

	fmt.Fprintf(w, "%-4s %-6s", "EL", "T")
	for _, name := range columns {
		fmt.Fprintf(w, " %12s", name)
	}
	fmt.Fprintln(w)

	for i := range elements {
		fmt.Fprintf(w, "%-4.0f %-6.3f", elements[i], results["T"][i])
		for _, name := range columns {
			fmt.Fprintf(w, " %12.5g", results[name][i])
		}
		fmt.Fprintln(w)
	}
}
