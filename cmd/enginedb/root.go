package main

import (
	"fmt"
	"os"

	"engineprime/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	libraryDir string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "enginedb",
	Short: "Inspect and edit Engine DJ library directories",
	Long: `enginedb opens or creates an Engine library directory (a legacy
m.db/p.db pair, or a unified Database2/m.db file) and exposes its
tracks, crates, playlists and pack metadata as subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if libraryDir == "" {
			libraryDir = viper.GetString("dir")
		}
		if logLevel == "" {
			logLevel = viper.GetString("log-level")
		}
		var err error
		if logFile != "" {
			logger = logging.InitFileLogger(logLevel, logFile, 50, 5, 28)
		} else {
			logger, err = logging.InitLogger(logLevel)
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&libraryDir, "dir", "", "library directory (default: config \"dir\", or cwd)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: config \"log-level\", or info)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write rotating JSON logs here instead of stderr")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./.enginedb.yaml or $HOME/.config/enginedb/config.yaml)")
}

func resolveDir() (string, error) {
	if libraryDir != "" {
		return libraryDir, nil
	}
	return os.Getwd()
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
