package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-smith/pkg/analysis"
	"github.com/edp1096/toy-smith/pkg/util"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <netlist|project.yaml>",
	Short: "Cross-check the final input impedance with a nodal solve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ckt, logger, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		tolerance, _ := cmd.Flags().GetFloat64("tolerance")
		system, _ := cmd.Flags().GetBool("system")

		nodal := analysis.NewNodal()
		nodal.SetDebug(system)
		v, err := nodal.Verify(ckt)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Debug("verification", "propagated", v.Propagated, "nodal", v.Nodal, "error", v.Error)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Propagated: %s\n", util.FormatComplex(v.Propagated.Complex(), "Ohm"))
		fmt.Fprintf(out, "Nodal:      %s\n", util.FormatComplex(v.Nodal, "Ohm"))
		fmt.Fprintf(out, "Rel. error: %.3e\n", v.Error)

		if !v.Within(tolerance) {
			return fmt.Errorf("mismatch above tolerance %g", tolerance)
		}
		fmt.Fprintln(out, "OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Float64("tolerance", 1e-6, "Maximum relative error")
	verifyCmd.Flags().Bool("system", false, "Print the nodal equations")
}
