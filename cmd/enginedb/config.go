package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// initConfig loads ./.enginedb.yaml (if present) or
// $HOME/.config/enginedb/config.yaml, then layers ENGINEDB_*
// environment variables on top. Flags always win — PersistentPreRunE
// only falls back to viper for flags left at their zero value.
func initConfig() error {
	viper.SetConfigType("yaml")
	viper.SetDefault("dir", "")
	viper.SetDefault("log-level", "info")

	viper.SetEnvPrefix("ENGINEDB")
	viper.AutomaticEnv()

	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return viper.ReadInConfig()
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".enginedb.yaml")
		if _, err := os.Stat(local); err == nil {
			viper.SetConfigFile(local)
			return viper.ReadInConfig()
		}
	}

	if home, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(home, "enginedb", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			viper.SetConfigFile(candidate)
			return viper.ReadInConfig()
		}
	}

	// No config file anywhere — defaults and env vars only.
	return nil
}
