package model

// OpenWeatherMapResponse is the subset of the /data/2.5/weather payload the CLI reads.
type OpenWeatherMapResponse struct {
	Name    string       `json:"name"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// Condition is one entry of the "weather" array. ID is the weather condition code.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
