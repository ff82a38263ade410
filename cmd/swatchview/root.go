package swatchview

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "swatchview",
	Short: "Browse ColorChecker reference charts",
	Long: `Swatchview renders the BabelColor ColorChecker reference data as an
interactive chart. Point it at ColorChecker_RGB_and_spectra.xlsx (from
babelcolor.com) and it serves a page where you can flip between chart
editions and color spaces.`,
	PersistentPreRun: bindFlags,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.swatchview.toml)")
}

func initConfig() {
	if cfgFile != "" {
		slog.Info("Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".swatchview" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".swatchview")
	}

	viper.SetEnvPrefix("swatchview")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `
port = 9000
data = "./ColorChecker_RGB_and_spectra.xlsx"
`
	configPath := "./.swatchview.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Since viper does case-insensitive comparisons, we only need to
		// remove the hyphens to match camelCased config keys.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Error setting flag", "flag", f.Name, "error", err)
				panic(err)
			}
		}
	})
}
