package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ukaji3/datavis-go/pkg/datavis"
	"github.com/ukaji3/datavis-go/pkg/datavis/models"
	"github.com/ukaji3/datavis-go/pkg/datavis/output"
)

// loadDataset loads path into s, logging the outcome.
func loadDataset(s *datavis.Session, path string) (*models.Dataset, error) {
	ds, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("dataset loaded", "path", path, "rows", ds.RowCount(), "columns", len(ds.Columns))
	return ds, nil
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <file>",
		Short: "List the columns of a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(newSession(), args[0])
			if err != nil {
				return err
			}
			output.WriteColumns(cmd.OutOrStdout(), ds)
			return nil
		},
	}
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the rows of a data file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(newSession(), args[0])
			if err != nil {
				return err
			}
			output.WritePreview(cmd.OutOrStdout(), ds, cfg.PreviewRows)
			return nil
		},
	}
	cmd.Flags().Int("preview-rows", 0, "Maximum rows to print (0 prints all; default from config)")
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported chart kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"kind", "label", "columns"})
			for _, k := range models.ChartKinds {
				roles := "y"
				if k.RequiresX() {
					roles = "x, y"
				}
				t.AppendRow(table.Row{k, k.Label(), roles})
			}
			t.Render()
			return nil
		},
	}
}

type plotFlags struct {
	x, y, kind string
	out        string
	json       bool
	pretty     bool
}

func newPlotCmd() *cobra.Command {
	var f plotFlags

	cmd := &cobra.Command{
		Use:   "plot <file>",
		Short: "Render a chart from two columns and save it as PNG",
		Example: `  datavis plot people.csv --x age --y height --kind scatter -o scatter.png
  datavis plot sales.xlsx --y status --kind "Pie Chart" -o status`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.x, "x", "", "X-axis column")
	cmd.Flags().StringVar(&f.y, "y", "", "Y-axis column")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "Chart kind: "+kindNames())
	cmd.Flags().StringVarP(&f.out, "output", "o", "", "Output PNG path (.png is added when missing)")
	cmd.Flags().BoolVar(&f.json, "json", false, "Write the chart description as JSON to stdout")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().Int("width", 0, "Image width in pixels (default from config)")
	cmd.Flags().Int("height", 0, "Image height in pixels (default from config)")
	cmd.Flags().Int("bins", 0, "Histogram bin count (default from config)")

	return cmd
}

func runPlot(cmd *cobra.Command, path string, f plotFlags) error {
	kind, ok := models.ParseChartKind(f.kind)
	if !ok {
		return fmt.Errorf("unknown chart kind %q (must be one of %s)", f.kind, kindNames())
	}
	if f.out == "" && !f.json {
		return errors.New("nothing to do: pass --output and/or --json")
	}

	s := newSession()
	if _, err := loadDataset(s, path); err != nil {
		return err
	}

	a, err := s.ResolveAndRender(models.Request{XColumn: f.x, YColumn: f.y, Kind: kind})
	if err != nil {
		return fmt.Errorf("cannot create chart: %w", err)
	}
	slog.Debug("chart rendered", "kind", a.Kind, "artifact_id", a.ID, "title", a.Title)

	if f.json {
		data, err := output.ToJSON(a, f.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if f.out != "" {
		written, err := s.ExportCurrent(f.out)
		if err != nil {
			return fmt.Errorf("failed to save chart: %w", err)
		}
		slog.Debug("chart exported", "path", written, "artifact_id", a.ID)
		fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("Chart saved successfully at "+written))
	}

	return nil
}

// kindNames lists the short names of every chart kind.
func kindNames() string {
	names := make([]string, len(models.ChartKinds))
	for i, k := range models.ChartKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
