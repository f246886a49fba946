// Package main is the yixiang command line: poem imagery analysis, stored
// reports, and the HTTP API server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "yixiang",
	Short: "Imagery statistics for classical Chinese poems",
	Long: `yixiang parses numbered poem collections, counts imagery terms from a
curated lexicon, and reports co-occurrence networks, category breakdowns,
and imagery/word associations.

Settings come from a YAML config file, YIXIANG_* environment variables
(also read from a .env file), and flags, in increasing priority.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./yixiang.yaml or ~/.config/yixiang/config.yaml)")
	flags.String("db", "", "SQLite report database (default: in-memory)")
	flags.String("lexicon", "", "lexicon YAML file (default: built-in lexicon)")
	flags.Int64("max-file-size", 0, "largest accepted document in bytes")

	_ = viper.BindPFlag("db_path", flags.Lookup("db"))
	_ = viper.BindPFlag("lexicon_path", flags.Lookup("lexicon"))
	_ = viper.BindPFlag("max_file_size", flags.Lookup("max-file-size"))
}

// initConfig locates the config file; its content is parsed by loadSettings.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("yixiang")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "yixiang"))
		}
	}

	viper.SetEnvPrefix("YIXIANG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
