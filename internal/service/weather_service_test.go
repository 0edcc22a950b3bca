package service

import (
	"context"
	"testing"

	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockWeatherRepository struct {
	err       error
	mockData  *model.OpenWeatherMapResponse
	gotCity   []string
	gotUnits  model.Units
	callCount int
}

func (m *mockWeatherRepository) GetWeather(ctx context.Context, city []string, units model.Units) (*model.OpenWeatherMapResponse, error) {
	m.callCount++
	m.gotCity = city
	m.gotUnits = units
	if m.err != nil {
		return nil, m.err
	}
	return m.mockData, nil
}

func parisResponse() *model.OpenWeatherMapResponse {
	return &model.OpenWeatherMapResponse{
		Name: "Paris",
		Main: model.MainReadings{Temp: 21.0},
		Weather: []model.Condition{
			{ID: 800, Main: "Clear", Description: "clear sky"},
			{ID: 701, Main: "Mist", Description: "mist"},
		},
	}
}

func TestWeatherService_GetWeather(t *testing.T) {
	tests := []struct {
		name        string
		units       model.Units
		repoErr     error
		mockData    *model.OpenWeatherMapResponse
		expectError error
		expect      *model.WeatherReport
	}{
		{
			name:     "metric report uses first condition",
			units:    model.Metric,
			mockData: parisResponse(),
			expect: &model.WeatherReport{
				City: "Paris", Code: 800, Description: "clear sky", Temperature: 21.0, Units: model.Metric,
			},
		},
		{
			name:     "imperial units are carried through",
			units:    model.Imperial,
			mockData: parisResponse(),
			expect: &model.WeatherReport{
				City: "Paris", Code: 800, Description: "clear sky", Temperature: 21.0, Units: model.Imperial,
			},
		},
		{
			name:        "repository error is returned unchanged",
			units:       model.Metric,
			repoErr:     repository.ErrCityNotFound,
			expectError: repository.ErrCityNotFound,
		},
		{
			name:        "payload without conditions",
			units:       model.Metric,
			mockData:    &model.OpenWeatherMapResponse{Name: "Paris"},
			expectError: repository.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockWeatherRepository{err: tt.repoErr, mockData: tt.mockData}
			service := NewWeatherService(mockRepo, nil)

			result, err := service.GetWeather(context.Background(), []string{"Paris"}, tt.units)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)
			assert.Equal(t, []string{"Paris"}, mockRepo.gotCity)
			assert.Equal(t, tt.units, mockRepo.gotUnits)
			assert.Equal(t, 1, mockRepo.callCount)
		})
	}
}

func TestNewWeatherService_NilRepo(t *testing.T) {
	service := NewWeatherService(nil, nil)
	require.NotNil(t, service)

	_, err := service.GetWeather(context.Background(), []string{"Paris"}, model.Metric)
	assert.ErrorIs(t, err, ErrWeatherService)
}
