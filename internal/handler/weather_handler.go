package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/display"
	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
	"github.com/fakhrymubarak/weather-cli/internal/service"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
	Out            io.Writer
	Colored        bool
}

func NewWeatherHandler(svc service.WeatherServiceInterface, out io.Writer, colored bool) *WeatherHandler {
	return &WeatherHandler{
		WeatherService: svc,
		Out:            out,
		Colored:        colored,
	}
}

// HandleWeather looks up the city and prints its summary line. Nothing is written on error.
func (h *WeatherHandler) HandleWeather(ctx context.Context, city []string, units model.Units) error {
	report, err := h.WeatherService.GetWeather(ctx, city, units)
	if err != nil {
		return err
	}
	return display.Render(h.Out, *report, h.Colored)
}

// Message maps an error to the line shown to the user before exiting.
func Message(err error) string {
	var statusErr *repository.StatusError
	switch {
	case errors.Is(err, repository.ErrAccessDenied):
		return "Access denied. Check your API key."
	case errors.Is(err, repository.ErrCityNotFound):
		return "Can't find weather data for this city."
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Something went wrong... (%d)", statusErr.Code)
	case errors.Is(err, repository.ErrInvalidResponse):
		return "Couldn't read the server response."
	case errors.Is(err, repository.ErrAPIKeyMissing):
		return "Missing API key. Add it to secrets.ini under [openweather] api_key."
	case errors.Is(err, repository.ErrEmptyCity):
		return "Please enter a city name."
	case errors.Is(err, config.ErrUnreadable):
		return fmt.Sprintf("Couldn't read the configuration (%v)", err)
	case errors.Is(err, repository.ErrExternalAPI):
		return "Couldn't reach the weather service."
	default:
		return fmt.Sprintf("Something went wrong... (%v)", err)
	}
}
