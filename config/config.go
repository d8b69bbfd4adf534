package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultMetOfficeBaseURL = "https://data.hub.api.metoffice.gov.uk/sitespecific/v0/point"

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	MetOfficeAPIKey  string
	MetOfficeBaseURL string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "uk-weather-mcp")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	// Must exceed the 30s bound on the upstream Met Office call.
	v.SetDefault("HTTP_TIMEOUT", 35)
	v.SetDefault("MET_OFFICE_API_BASE_URL", defaultMetOfficeBaseURL)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		MetOfficeAPIKey:  v.GetString("MET_OFFICE_API_KEY"),
		MetOfficeBaseURL: v.GetString("MET_OFFICE_API_BASE_URL"),
	}

	if config.MetOfficeAPIKey == "" {
		return nil, errors.New("MET_OFFICE_API_KEY environment variable not set")
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
