package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"taxdeedflow/pkg/core/recommend"
)

// thresholdsCmd prints the effective verdict thresholds, for producing a
// starting override file or checking what a config resolves to.
func thresholdsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Print the effective verdict thresholds as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := recommend.DefaultThresholds()
			if path != "" {
				loaded, err := recommend.LoadThresholds(path)
				if err != nil {
					return err
				}
				t = loaded
			}

			out, err := yaml.Marshal(t)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "YAML threshold overrides to resolve")
	return cmd
}
