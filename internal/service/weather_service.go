package service

import (
	"context"
	"errors"

	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
	"go.uber.org/zap"
)

var ErrWeatherService = errors.New("weather service error")

type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city []string, units model.Units) (*model.WeatherReport, error)
}

// WeatherService turns the provider payload into the report the CLI prints.
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
	Logger      *zap.SugaredLogger
}

func NewWeatherService(repo repository.WeatherRepository, logger *zap.SugaredLogger) *WeatherService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WeatherService{
		WeatherRepo: repo,
		Logger:      logger,
	}
}

// GetWeather fetches current conditions for the city and maps them to a report.
// Only the first weather condition is used.
func (s *WeatherService) GetWeather(ctx context.Context, city []string, units model.Units) (*model.WeatherReport, error) {
	if s.WeatherRepo == nil {
		return nil, ErrWeatherService
	}
	data, err := s.WeatherRepo.GetWeather(ctx, city, units)
	if err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, repository.ErrInvalidResponse
	}

	condition := data.Weather[0]
	s.Logger.Debugw("weather fetched",
		"city", data.Name,
		"code", condition.ID,
		"temp", data.Main.Temp,
		"units", units,
	)
	return &model.WeatherReport{
		City:        data.Name,
		Code:        condition.ID,
		Description: condition.Description,
		Temperature: data.Main.Temp,
		Units:       units,
	}, nil
}
