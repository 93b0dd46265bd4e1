package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/planner/internal/config"
	configcmd "github.com/Iron-Ham/planner/internal/cmd/config"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Terminal client for the AI project-planning service",
	Long: `Planner submits project descriptions to a planning service and shows the
generated plan, schedule and review. Previously generated projects can be
listed, searched, reopened, exported and deleted.

Without a subcommand, planner starts the interactive terminal UI.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/planner/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "planning service base URL (overrides api.base_url)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))

	configcmd.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PLANNER")
	// e.g., PLANNER_EXPORT_OPEN_COMMAND for export.open_command
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.BindEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
