package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/handler"
	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
	"github.com/fakhrymubarak/weather-cli/internal/service"
	"github.com/fakhrymubarak/weather-cli/internal/telemetry"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run is the only place that prints errors and picks the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	imperial := fs.BoolP("imperial", "i", false, "display the temperature in imperial units")
	configPath := fs.String("config", config.DefaultPath, "INI file holding [openweather] api_key")
	noColor := fs.Bool("no-color", false, "disable colored output")
	verbose := fs.BoolP("verbose", "v", false, "log debug information to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: weather city [city ...] [-i|--imperial]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "get weather and temperature info for a city")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "weather: %v\n", err)
		fs.Usage()
		return exitUsage
	}
	city := fs.Args()
	if len(city) == 0 {
		fs.Usage()
		fmt.Fprintln(stderr, "weather: the following arguments are required: city")
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, handler.Message(err))
		return exitFailure
	}

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	logger, err := config.NewLogger(level)
	if err != nil {
		fmt.Fprintf(stderr, "weather: %v\n", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	shutdown, err := telemetry.InitProvider(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warnw("tracing disabled", "error", err)
	} else {
		defer flushTraces(shutdown, logger)
	}

	repo := repository.NewWeatherRepository(cfg, logger)
	svc := service.NewWeatherService(repo, logger)
	h := handler.NewWeatherHandler(svc, stdout, !*noColor && !color.NoColor)

	if err := h.HandleWeather(ctx, city, model.UnitsFor(*imperial)); err != nil {
		logger.Debugw("weather lookup failed", "error", err)
		fmt.Fprintln(stderr, handler.Message(err))
		return exitFailure
	}
	return exitOK
}

func flushTraces(shutdown telemetry.ShutdownFunc, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Warnw("failed to flush traces", "error", err)
	}
}
