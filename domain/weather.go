package domain

// Temperature is the current reading with the day's expected range.
type Temperature struct {
	Current float64 `json:"current"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Rain carries today's precipitation outlook.
type Rain struct {
	Probability float64 `json:"probability"`
	TotalInches float64 `json:"totalInches"`
}

// WeatherData is the payload the weather collaborator produces. The core
// renders it as-is and performs no validation or transformation.
type WeatherData struct {
	Temperature     Temperature `json:"temperature"`
	Rain            Rain        `json:"rain"`
	SunriseLabel    string      `json:"sunriseLabel"`
	SunsetLabel     string      `json:"sunsetLabel"`
	DaylightPercent int         `json:"daylightPercent"`
	Description     string      `json:"description"`
	Icon            string      `json:"icon"`
}

// FallbackWeather is the static substitute used whenever the live fetch
// fails. It always succeeds.
func FallbackWeather() WeatherData {
	return WeatherData{
		Temperature:     Temperature{Current: 68, Min: 55, Max: 75},
		Rain:            Rain{Probability: 10, TotalInches: 0},
		SunriseLabel:    "6:45 AM",
		SunsetLabel:     "7:30 PM",
		DaylightPercent: 53,
		Description:     "Partly cloudy",
		Icon:            "partly-cloudy",
	}
}
