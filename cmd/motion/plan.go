package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/phanxgames/motion"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <script.yaml>",
	Short: "Run a scenario script and print the animations it registers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		presetPath, _ := cmd.Flags().GetString("presets")
		showMetrics, _ := cmd.Flags().GetBool("metrics")
		return runPlan(cmd.OutOrStdout(), args[0], presetPath, debug, showMetrics)
	},
}

func init() {
	planCmd.Flags().String("presets", "", "Preset file referenced by the script")
	planCmd.Flags().Bool("metrics", false, "Print animation counters after the run")
	rootCmd.AddCommand(planCmd)
}

func runPlan(w io.Writer, scriptPath, presetPath string, debug, showMetrics bool) error {
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := motion.LoadScript(data)
	if err != nil {
		return err
	}

	logger := newLogger(debug)
	defer logger.Sync() //nolint:errcheck

	reg := prometheus.NewRegistry()
	cfg := motion.Config{Logger: logger, Debug: debug, Metrics: motion.NewMetrics(reg)}

	var presets *motion.PresetFile
	if presetPath != "" {
		presets, err = loadPresetFile(presetPath)
		if err != nil {
			return err
		}
		cfg = presets.Apply(cfg)
	}

	scene := motion.NewScene(cfg)
	report, err := motion.NewScriptRunner(scene, presets).Run(script)
	if err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	if err := report.Write(w); err != nil {
		return err
	}
	if showMetrics {
		return writeMetrics(w, reg)
	}
	return nil
}

// writeMetrics prints every counter sample as "name{labels} value".
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				if labels != "" {
					labels += ","
				}
				labels += lp.GetName() + "=" + lp.GetValue()
			}
			if labels != "" {
				labels = "{" + labels + "}"
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), labels, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
