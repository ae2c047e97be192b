package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from an optional JSON file and sets default
// values. configDir is the directory searched for the config file; running
// without one leaves the defaults in place. Game rules (board size, fleet)
// are fixed constants and deliberately not configurable.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "warships.log")

	viper.SetDefault("playerA.nick", "Player A")
	viper.SetDefault("playerB.nick", "Player B")

	viper.SetConfigName("warships.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
