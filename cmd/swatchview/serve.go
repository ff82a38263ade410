package swatchview

import (
	"fmt"
	"log/slog"

	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:              "serve",
	Short:            "Serve the interactive chart viewer",
	Long:             `Load the reference workbook once and serve the interactive ColorChecker viewer on a local port.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		slog.Info("Config file", "path", viper.ConfigFileUsed())
		slog.Info("Loading reference data", "path", dataPath, "sheet", sheetName)

		table, err := chart.LoadTable(dataPath, sheetName)
		if err != nil {
			return fmt.Errorf("could not load reference data: %w", err)
		}

		slog.Info("Indexed reference data",
			"versions", len(table.Versions()), "spaces", len(table.Spaces()))

		web.StartServer(port, table, screenWidth, screenHeight, dev)

		return nil
	},
}

var (
	dataPath     string
	sheetName    string
	port         int
	screenWidth  int
	screenHeight int
	dev          bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().StringVarP(
		&dataPath,
		"data",
		"d",
		"./ColorChecker_RGB_and_spectra.xlsx",
		"Path to the BabelColor reference workbook")

	serveCmd.Flags().StringVar(
		&sheetName,
		"sheet",
		chart.DefaultSheetName,
		"Name of the sheet holding the 8-bit RGB data")

	serveCmd.Flags().IntVar(&screenWidth,
		"screen-width",
		1920,
		"Fallback screen width used when the client does not report one")

	serveCmd.Flags().IntVar(&screenHeight,
		"screen-height",
		1080,
		"Fallback screen height used when the client does not report one")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")
}
