package models

// NormalizedWeather is the provider-independent view of current conditions for a city.
type NormalizedWeather struct {
	City                  string  `json:"city" example:"Seattle"`
	Country               string  `json:"country" example:"USA"`
	TemperatureCelsius    float64 `json:"temperatureCelsius" example:"15.5"`
	FeelsLikeCelsius      float64 `json:"feelsLikeCelsius" example:"14"`
	Description           string  `json:"description" example:"Partly cloudy"`
	HumidityPercent       int     `json:"humidityPercent" example:"75"`
	WindSpeedKph          float64 `json:"windSpeedKph" example:"10.5"`
	ObservedAtUnixSeconds int64   `json:"observedAtUnixSeconds" example:"1700000000"`
}
