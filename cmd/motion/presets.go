package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets <presets.yaml>",
	Short: "Validate a preset file and list its presets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresets(cmd.OutOrStdout(), args[0])
	},
}

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the timing function names presets and scripts accept",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range motion.FunctionNames() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(functionsCmd)
}

func loadPresetFile(path string) (*motion.PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return motion.LoadPresets(data)
}

func runPresets(w io.Writer, path string) error {
	f, err := loadPresetFile(path)
	if err != nil {
		return err
	}
	cfg := f.Apply(motion.Config{})
	if cfg.DefaultDuration > 0 {
		fmt.Fprintf(w, "default duration: %gs\n", cfg.DefaultDuration)
	}
	for _, name := range f.Names() {
		p := f.Presets[name]
		fmt.Fprintf(w, "%s: start=%s duration=%s function=%s", name, p.Start, p.Duration, p.Function)
		for _, t := range p.Traits {
			fmt.Fprintf(w, " %s", t)
		}
		fmt.Fprintln(w)
	}
	return nil
}
