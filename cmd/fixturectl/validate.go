package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Validate fails when the configuration is rejected or when any match finds no slot.
func Validate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate -f tournament.yaml",
		Short: "Check that the tournament file yields a fully scheduled fixture",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			_, result, err := plan(file, discardLogger())
			if err != nil {
				return err
			}
			if n := len(result.Report.Unscheduled); n > 0 {
				return fmt.Errorf("%d matches could not be scheduled: %s", n, strings.Join(result.Report.Unscheduled, ", "))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %d matches scheduled in %d slots\n",
				result.Generator, result.Report.Scheduled, result.Report.Slots)
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Tournament YAML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
