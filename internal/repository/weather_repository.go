package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/fakhrymubarak/weather-cli/internal/repository"

// Custom error types
var (
	ErrAPIKeyMissing    = errors.New("API key missing")
	ErrEmptyCity        = errors.New("city name missing")
	ErrAccessDenied     = errors.New("access denied")
	ErrCityNotFound     = errors.New("city not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidResponse  = errors.New("invalid server response")
	ErrExternalAPI      = errors.New("external API error")
)

// StatusError carries a non-2xx status other than 401 and 404.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("external API returned status %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// WeatherRepository defines the interface for weather data access
type WeatherRepository interface {
	GetWeather(ctx context.Context, city []string, units model.Units) (*model.OpenWeatherMapResponse, error)
}

// weatherRepository implements WeatherRepository against OpenWeatherMap
type weatherRepository struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *zap.SugaredLogger
}

// NewWeatherRepository creates a new weather repository instance
func NewWeatherRepository(cfg config.Config, logger *zap.SugaredLogger, httpClient ...*http.Client) WeatherRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &weatherRepository{
		baseURL:    cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: client,
		tracer:     otel.Tracer(tracerName),
		logger:     logger,
	}
}

// BuildQueryURL returns the current-weather URL for the city words, with every
// query parameter form-encoded ("San Francisco" becomes q=San+Francisco).
func BuildQueryURL(baseURL, apiKey string, city []string, units model.Units) (string, error) {
	if apiKey == "" {
		return "", ErrAPIKeyMissing
	}
	name := strings.Join(city, " ")
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyCity
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid API url %q: %w", baseURL, err)
	}
	q := u.Query()
	q.Set("q", name)
	q.Set("units", string(units))
	q.Set("appid", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// GetWeather builds the query, performs a single GET and decodes the body.
func (r *weatherRepository) GetWeather(ctx context.Context, city []string, units model.Units) (*model.OpenWeatherMapResponse, error) {
	ctx, span := r.tracer.Start(ctx, "openweathermap.fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("weather.city", strings.Join(city, " ")),
		attribute.String("weather.units", string(units)),
	)

	queryURL, err := BuildQueryURL(r.baseURL, r.apiKey, city, units)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build query")
		return nil, err
	}

	body, err := r.Fetch(ctx, queryURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch weather")
		return nil, err
	}

	data, err := Decode(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode response")
		return nil, err
	}
	return data, nil
}

// Fetch performs exactly one GET and returns the body of a 2xx response.
func (r *weatherRepository) Fetch(ctx context.Context, queryURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		// The error text embeds the URL, which carries the API key.
		r.logger.Debugw("weather request failed", "host", req.URL.Host)
		return nil, fmt.Errorf("%w: request to %s failed", ErrExternalAPI, req.URL.Host)
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	r.logger.Debugw("weather response", "status", resp.StatusCode, "host", req.URL.Host)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrAccessDenied
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCityNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return body, nil
}

// Decode parses a response body. A payload without any weather condition cannot be
// displayed and is rejected like malformed JSON.
func Decode(body []byte) (*model.OpenWeatherMapResponse, error) {
	var data model.OpenWeatherMapResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("%w: no weather conditions", ErrInvalidResponse)
	}
	return &data, nil
}
