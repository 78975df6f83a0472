package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// DefaultSourceURL is the fixed endpoint the doctor directory is fetched from.
const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App       AppConfig
	Log       LogConfig
	Directory DirectoryConfig

	// FileUsed is the config file viper read, empty when running from env only.
	FileUsed string
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

type DirectoryConfig struct {
	SourceURL string
	// FetchTimeout of zero leaves the request without a deadline.
	FetchTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIRECTORY_SOURCE_URL", DefaultSourceURL)
	v.SetDefault("DIRECTORY_FETCH_TIMEOUT", "0s")
}

// LoadConfig reads .env from the working directory when present and lets
// process environment variables override it.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper(), ".env")
}

func LoadConfigFrom(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	fileUsed := file
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		fileUsed = ""
	}

	fetchTimeout, err := time.ParseDuration(v.GetString("DIRECTORY_FETCH_TIMEOUT"))
	if err != nil || fetchTimeout < 0 {
		fetchTimeout = 0
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Directory: DirectoryConfig{
			SourceURL:    v.GetString("DIRECTORY_SOURCE_URL"),
			FetchTimeout: fetchTimeout,
		},
		FileUsed: fileUsed,
	}

	return config, nil
}
