package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/Sympa1/qr-code-gen/internal/adapters/logger"
)

// Config carries the shell defaults. Rendering geometry (module size, quiet
// zone, error correction) is fixed in pkg/qrcode and intentionally absent.
type Config struct {
	FillColor       string
	BackgroundColor string
	FileName        string
	PreviewSize     int
}

func initConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("settings.debug", false)
	viper.SetDefault("settings.log-to-file", false)
	viper.SetDefault("settings.logs-dir", "")
	viper.SetDefault("defaults.fill-color", "Black")
	viper.SetDefault("defaults.background-color", "White")
	viper.SetDefault("defaults.file-name", "qrcode.png")
	viper.SetDefault("defaults.preview-size", 40)

	// The config file is optional, defaults cover every key.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func Get() (*Config, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		return nil, err
	}

	return &Config{
		FillColor:       viper.GetString("defaults.fill-color"),
		BackgroundColor: viper.GetString("defaults.background-color"),
		FileName:        viper.GetString("defaults.file-name"),
		PreviewSize:     viper.GetInt("defaults.preview-size"),
	}, nil
}
