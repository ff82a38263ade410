package swatchview

import (
	"fmt"

	"github.com/colorlab-io/swatchview/chart"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:              "inspect",
	Short:            "Print what the reference workbook contains",
	Long:             `Load and index the reference workbook, then list the chart versions and color spaces it carries. Useful as a sanity check of a freshly downloaded file.`,
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := chart.LoadTable(inspectDataPath, inspectSheetName)
		if err != nil {
			return fmt.Errorf("could not load reference data: %w", err)
		}

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Chart versions:")

		for _, v := range table.Versions() {
			fmt.Fprintf(out, "  %s\n", v)
		}

		fmt.Fprintln(out, "Color spaces:")

		for _, s := range table.Spaces() {
			fmt.Fprintf(out, "  %s\n", s)
		}

		// One sample patch as a spot check: first version, first space,
		// dark skin (patch 1).
		swatches, err := table.Lookup(table.Versions()[0], table.Spaces()[0])
		if err != nil {
			return fmt.Errorf("could not look up sample patch: %w", err)
		}

		fmt.Fprintf(out, "Sample patch 1 (%s / %s): %s\n",
			table.Versions()[0], table.Spaces()[0], swatches[0].Label())

		return nil
	},
}

var (
	inspectDataPath  string
	inspectSheetName string
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(
		&inspectDataPath,
		"data",
		"d",
		"./ColorChecker_RGB_and_spectra.xlsx",
		"Path to the BabelColor reference workbook")

	inspectCmd.Flags().StringVar(
		&inspectSheetName,
		"sheet",
		chart.DefaultSheetName,
		"Name of the sheet holding the 8-bit RGB data")
}
