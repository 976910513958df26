// Package main provides the CLI entry point for datavis-go.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ukaji3/datavis-go/internal/config"
	"github.com/ukaji3/datavis-go/internal/logging"
	"github.com/ukaji3/datavis-go/pkg/datavis"
)

var (
	cfgFile string
	cfg     *config.Config
)

var (
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), warnStyle.Render("Warning:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datavis",
		Short: "Render charts from CSV and Excel files",
		Long: `datavis-go loads a CSV or XLSX table, builds a chart from two of its
columns and saves it as a PNG image.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var (
				err  error
				used string
			)
			cfg, used, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if used != "" {
				logger.Debug("config loaded", "path", used)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./datavis.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format: text or json")

	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newKindsCmd())
	rootCmd.AddCommand(newPlotCmd())

	return rootCmd
}

// newSession builds a session from the loaded configuration.
func newSession() *datavis.Session {
	return datavis.NewSession(datavis.Options{
		Bins:   cfg.Bins,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil)
}
