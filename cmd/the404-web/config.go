package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/costa-rica/The404-Web/internal/api/http"
	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log     LogConfig
	Http    http.Config
	Backend backend.Config

	// Mode "workstation" pre-fills the login form with development
	// credentials.
	Mode string `mapstructure:"mode"`
}

var config Config

func InitConfig() {
	var err error

	_ = godotenv.Load()

	viper.SetConfigName("application")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd/the404-web")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("backend.base_url", "API_BASE_URL")
	_ = viper.BindEnv("backend.internal_base_url", "INTERNAL_API_BASE_URL")
	_ = viper.BindEnv("backend.use_mock_data", "USE_MOCK_DATA")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		panic(err)
	}

	// Initialize logger with configured log level
	initLogger(config.Log.Level)

	// Pretty print config as JSON (only at DEBUG level)
	if strings.ToUpper(config.Log.Level) == LOG_LEVEL_DEBUG {
		configJSON, err := json.MarshalIndent(config, "", "  ")
		if err == nil {
			fmt.Println("Config loaded:")
			fmt.Println(string(configJSON))
		}
	}
}
