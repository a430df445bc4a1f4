package triadchain

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// InitConfig sets up our Viper config object. Settings come from defaults,
// an optional config.yaml in rootDir and TRIADCHAIN_* environment variables.
// Nothing is ever written back.
func InitConfig(config *viper.Viper) {
	config.SetEnvPrefix("triadchain")
	config.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		LogCLI(err.Error(), 3)
		homeDir = "."
	}
	config.SetDefault("rootDir", filepath.Join(homeDir, ".triadchain"))
	config.SetDefault("depth", DefaultDepth)
	config.SetDefault("logLevel", defaultLogLevel)

	config.SetConfigType("yaml")
	config.SetConfigFile(filepath.Join(config.GetString("rootDir"), "config.yaml"))
	err = config.ReadInConfig()
	if err != nil {
		//a missing config file is the normal case
		LogCLI(err.Error(), 4)
	}
}
