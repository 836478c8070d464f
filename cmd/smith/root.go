package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-smith/internal/logging"
	"github.com/edp1096/toy-smith/pkg/circuit"
	"github.com/edp1096/toy-smith/pkg/config"
	"github.com/edp1096/toy-smith/pkg/netlist"
)

var rootCmd = &cobra.Command{
	Use:   "smith",
	Short: "Smith chart trace calculator for passive matching chains",
	Long: `smith grows every element of a chain from zero to its full value on top of a
load impedance and reports the resulting impedance and admittance chart traces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("steps", 0, "Override samples per element")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

// loadData reads a netlist or, for .yaml and .yml files, a project file.
func loadData(path string) (*netlist.NetlistData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.Load(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading netlist file: %w", err)
	}
	data, err := netlist.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing netlist: %w", err)
	}
	return data, nil
}

func loadCircuit(cmd *cobra.Command, path string) (*circuit.Circuit, *slog.Logger, error) {
	logger := newLogger(cmd)

	data, err := loadData(path)
	if err != nil {
		return nil, logger, err
	}
	logger.Info("chain loaded", "file", path, "title", data.Title, "elements", len(data.Elements))

	ckt, err := circuit.FromNetlist(data)
	if err != nil {
		return nil, logger, err
	}
	ckt.WithLogger(logger)

	if steps, _ := cmd.Flags().GetInt("steps"); steps > 0 {
		ckt.SetSteps(steps)
	}
	return ckt, logger, nil
}
