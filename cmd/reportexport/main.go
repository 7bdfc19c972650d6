// Package main provides a command line interface
// to export report data documents as XLSX or CSV files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-report"
	"github.com/domonda/go-report/csvtable"
	"github.com/domonda/go-report/exceltable"
)

var (
	outputDir  string
	configPath string
	firm       report.FirmInfo
	tableIndex int
	filename   string
	delimiter  string
	encoding   string
	timeout    time.Duration
	verbose    bool

	log zerolog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reportexport",
		Short: "Export report data as spreadsheet or CSV",
		Long: `reportexport reads a report data document (YAML or JSON)
with tables and summary metrics and writes it
as formatted XLSX workbook or as CSV file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Timeout of the export")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")

	xlsxCmd := &cobra.Command{
		Use:   "xlsx [report-type] [report-data-file]",
		Short: "Export a report as XLSX workbook",
		Args:  cobra.ExactArgs(2),
		RunE:  runXLSX,
	}
	xlsxCmd.Flags().StringVar(&configPath, "config", "", "YAML file with presentation settings")
	xlsxCmd.Flags().StringVar(&firm.Name, "firm", "", "Firm name (required)")
	xlsxCmd.Flags().StringVar(&firm.Address, "firm-address", "", "Firm address")
	xlsxCmd.Flags().StringVar(&firm.Phone, "firm-phone", "", "Firm phone")
	xlsxCmd.Flags().StringVar(&firm.Email, "firm-email", "", "Firm email")
	xlsxCmd.Flags().StringVar(&firm.Website, "firm-website", "", "Firm website")

	csvCmd := &cobra.Command{
		Use:   "csv [report-data-file]",
		Short: "Export one table of a report as CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCSV,
	}
	csvCmd.Flags().IntVar(&tableIndex, "table", 1, "1 based index of the table to export")
	csvCmd.Flags().StringVar(&filename, "name", "", "File name without extension (default: table title)")
	csvCmd.Flags().StringVar(&delimiter, "delimiter", ",", "Field delimiter")
	csvCmd.Flags().StringVar(&encoding, "encoding", "UTF-8", "Character encoding of the output")

	rootCmd.AddCommand(xlsxCmd, csvCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func exportContext() (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancelTimeout()
		cancel()
	}
}

func runXLSX(cmd *cobra.Command, args []string) error {
	reportType := args[0]
	data, err := report.LoadReportData(fs.File(args[1]))
	if err != nil {
		return err
	}

	exporter := exceltable.NewExporter().WithLogger(log)
	if configPath != "" {
		config, err := exceltable.LoadConfigFile(fs.File(configPath))
		if err != nil {
			return fmt.Errorf("config %s: %w", configPath, err)
		}
		exporter = exporter.WithConfig(config)
	}

	ctx, cancel := exportContext()
	defer cancel()

	file, err := exporter.ExportReport(ctx, data, reportType, firm)
	if err != nil {
		return err
	}
	return save(file)
}

func runCSV(cmd *cobra.Command, args []string) error {
	data, err := report.LoadReportData(fs.File(args[0]))
	if err != nil {
		return err
	}
	if tableIndex < 1 || tableIndex > len(data.Tables) {
		return fmt.Errorf("table %d not found, report data has %d tables", tableIndex, len(data.Tables))
	}
	table := &data.Tables[tableIndex-1]
	name := filename
	if name == "" {
		name = table.Title
	}
	if name == "" {
		name = fmt.Sprintf("Data %d", tableIndex)
	}

	writer, err := csvtable.NewWriter().WithFormat(&csvtable.Format{
		Encoding:  encoding,
		Separator: delimiter,
		Newline:   "\r\n",
	})
	if err != nil {
		return err
	}

	ctx, cancel := exportContext()
	defer cancel()

	file, err := writer.Export(ctx, table, name)
	if err != nil {
		return err
	}
	return save(file)
}

func save(file *report.File) error {
	written, err := file.SaveTo(fs.File(outputDir))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info().Str("file", written.LocalPath()).Int("bytes", len(file.Data)).Msg("written")
	return nil
}
