package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "overtime-tracker",
	Short: "Recognize handwritten overtime forms into structured records",
	Long: `overtime-tracker submits scanned overtime form images to a vision
model, persists the recognized records as an editable JSON session file, and
exports sessions to CSV or XLSX.`,
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional YAML config file")
	rootCmd.AddCommand(recognizeCmd)
	rootCmd.AddCommand(exportCmd)
}
