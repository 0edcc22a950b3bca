package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// DefaultPath is where the API key is looked up when no --config flag is given.
	DefaultPath = "secrets.ini"
	// DefaultAPIURL is OpenWeatherMap's current weather by city name endpoint.
	DefaultAPIURL = "https://api.openweathermap.org/data/2.5/weather"

	defaultLogLevel    = "warn"
	defaultServiceName = "weather-cli"
)

// ErrUnreadable is returned when the configuration file exists but cannot be read or parsed.
var ErrUnreadable = errors.New("configuration unreadable")

// Config is built once at startup and passed down by value.
type Config struct {
	APIKey       string
	APIURL       string
	LogLevel     string
	OTLPEndpoint string
	ServiceName  string
}

// Load reads the INI file at path. A missing file is not an error: the API key may
// come from OPENWEATHERMAP_API_KEY, either exported or set in a .env file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	v.SetDefault("openweather.api_url", DefaultAPIURL)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("telemetry.service_name", defaultServiceName)

	_ = v.BindEnv("openweather.api_key", "OPENWEATHERMAP_API_KEY")
	_ = v.BindEnv("openweather.api_url", "OPENWEATHERMAP_API_URL")
	_ = v.BindEnv("telemetry.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("log.level", "WEATHER_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	return Config{
		APIKey:       v.GetString("openweather.api_key"),
		APIURL:       v.GetString("openweather.api_url"),
		LogLevel:     v.GetString("log.level"),
		OTLPEndpoint: v.GetString("telemetry.otlp_endpoint"),
		ServiceName:  v.GetString("telemetry.service_name"),
	}, nil
}

// NewLogger returns a development logger writing to stderr at the given level.
// stdout is reserved for the weather summary.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
