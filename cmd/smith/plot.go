package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-smith/pkg/analysis"
	"github.com/edp1096/toy-smith/pkg/chart"
)

var plotCmd = &cobra.Command{
	Use:   "plot <netlist|project.yaml>",
	Short: "Render the impedance and admittance traces to an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ckt, logger, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		admittance, _ := cmd.Flags().GetBool("admittance")

		analyzer := analysis.NewSmith().WithLogger(logger)
		if err := analyzer.Setup(ckt); err != nil {
			return fmt.Errorf("analysis setup failed: %w", err)
		}
		if err := analyzer.Execute(); err != nil {
			return fmt.Errorf("analysis execution failed: %w", err)
		}
		result := analyzer.Result()

		traces := []chart.Trace{{Name: "Γz", Points: result.ImpedanceTrace(), Color: chart.ImpedanceColor}}
		if admittance {
			traces = append(traces, chart.Trace{Name: "Γy", Points: result.AdmittanceTrace(), Color: chart.AdmittanceColor})
		}

		if err := chart.Save(output, ckt.Name(), traces...); err != nil {
			return err
		}
		logger.Info("chart written", "file", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringP("output", "o", "smith.png", "Output image (png, svg, pdf)")
	plotCmd.Flags().Bool("admittance", true, "Also draw the admittance chart trace")
}
