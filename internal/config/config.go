// Package config resolves the tool's settings from the process environment,
// an optional ./.env file, and an optional $HOME/.gtran.yaml config file.
// Environment values always win; with no files present, behavior is plain
// environment lookup.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the resolved defaults and credential for one run. Unset
// values resolve to the empty string.
type Config struct {
	SourceLang string
	TargetLang string
	AccessKey  string
	LogLevel   string
}

// Init wires viper to the environment and the optional config file. It is
// installed via cobra.OnInitialize and runs once before the command body.
func Init() {
	// Best-effort convenience load; an absent .env is not an error, and
	// already-set variables are never overridden.
	_ = godotenv.Load()

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".gtran")
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig()
	}

	viper.SetEnvPrefix("gt")
	viper.AutomaticEnv()

	// The credential lives outside the GT_ namespace.
	_ = viper.BindEnv("access_key", "GOOGLE_ACCESS_KEY")
}

// Load snapshots the resolved values.
func Load() Config {
	return Config{
		SourceLang: viper.GetString("input_language"),
		TargetLang: viper.GetString("output_language"),
		AccessKey:  viper.GetString("access_key"),
		LogLevel:   viper.GetString("log_level"),
	}
}
