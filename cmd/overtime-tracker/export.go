package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsuanlin/overtime-tracker/internal/export"
	"github.com/hsuanlin/overtime-tracker/internal/store"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <session-file>",
	Short: "Export a recognized session to CSV or XLSX",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: session file with new extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	rec, err := store.NewStore(nil).Load(args[0])
	if err != nil {
		return err
	}

	svc := export.NewService(nil)

	var data []byte
	switch exportFormat {
	case "csv":
		data, err = svc.ExportCSV(rec)
	case "xlsx":
		data, err = svc.ExportXLSX(rec)
	default:
		return fmt.Errorf("unknown format %q (want csv or xlsx)", exportFormat)
	}
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(args[0], ".json") + "." + exportFormat
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("Exported %d entries to %s\n", rec.TotalEntries, out)
	return nil
}
