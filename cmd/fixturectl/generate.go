package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dosada05/fixture-planner/config"
	"github.com/Dosada05/fixture-planner/export"
	"github.com/Dosada05/fixture-planner/planner"
)

func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate -f tournament.yaml",
		Short: "Build the fixture and print it grouped by zone, day, field or team",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			file, _ := cmd.Flags().GetString("file")
			csvPath, _ := cmd.Flags().GetString("csv")
			asJSON, _ := cmd.Flags().GetBool("json")
			viewFlag, _ := cmd.Flags().GetString("view")

			view, err := export.ParseView(viewFlag)
			if err != nil {
				return err
			}

			in, result, err := plan(file, logger)
			if err != nil {
				return err
			}
			dir := export.NewDirectory(in.Teams, in.Fields)

			if csvPath != "" {
				if err := writeCSVFile(csvPath, result, dir, cmd.OutOrStdout()); err != nil {
					return err
				}
				logger.Info("csv written", slog.String("path", csvPath))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "\t")
				return enc.Encode(result)
			}
			if csvPath == "-" {
				return nil
			}
			printGroups(out, export.GroupBy(view, result.Matches, dir))
			printReport(out, result)
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Tournament YAML file")
	cmd.Flags().String("csv", "", "Also write the fixture as CSV to this path (- for stdout)")
	cmd.Flags().Bool("json", false, "Print the full planning result as JSON")
	cmd.Flags().String("view", string(export.ViewZone), "Grouping: zone, day, field or team")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func plan(file string, logger *slog.Logger) (planner.Input, *planner.Result, error) {
	tf, err := config.LoadTournamentFile(file)
	if err != nil {
		return planner.Input{}, nil, err
	}
	in, err := tf.Input()
	if err != nil {
		return planner.Input{}, nil, err
	}
	logger.Debug("tournament loaded",
		slog.String("name", tf.Name),
		slog.Int("teams", len(in.Teams)),
		slog.Int("fields", len(in.Fields)),
		slog.String("format", string(in.Format.Kind)))

	result, err := planner.Plan(in)
	if err != nil {
		return planner.Input{}, nil, err
	}
	logger.Info("fixture generated",
		slog.String("generator", result.Generator),
		slog.Int("matches", len(result.Matches)),
		slog.Int("scheduled", result.Report.Scheduled),
		slog.Int("unscheduled", len(result.Report.Unscheduled)))
	return in, result, nil
}

func writeCSVFile(path string, result *planner.Result, dir export.Directory, stdout io.Writer) error {
	if path == "-" {
		return export.WriteCSV(stdout, result.Matches, dir)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteCSV(f, result.Matches, dir); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printGroups(w io.Writer, groups []*export.Group) {
	for _, g := range groups {
		fmt.Fprintf(w, "\x1b[34m%s\x1b[0m\n", g.Key)
		for _, row := range g.Rows {
			when := "unscheduled"
			if row.Date != "" {
				when = fmt.Sprintf("%s %s %s", row.Date, row.Time, row.Field)
			}
			fmt.Fprintf(w, "  %3d %-6s %-28s %s vs %s\n", row.Number, row.Code, when, row.Home, row.Away)
		}
		fmt.Fprintln(w)
	}
}

func printReport(w io.Writer, result *planner.Result) {
	fmt.Fprintf(w, "%s: %d matches, %d scheduled, %d byes, %d slots\n",
		result.Generator, len(result.Matches), result.Report.Scheduled, result.Report.Byes, result.Report.Slots)
	if len(result.Report.Unscheduled) > 0 {
		fmt.Fprintf(w, "\x1b[31mUnscheduled\x1b[0m: %v\n", result.Report.Unscheduled)
	}
}
