package weather

// Log prefixes
const (
	LogPrefixFetch = "internal.weather.Fetch"
)

// Soft messages for geocoding failures.
const (
	msgLocationNotFound      = "Could not find location data for %s. Please check local weather services."
	msgGeocodeTimeout        = "Weather data temporarily unavailable for %s. Please check local weather services."
	msgGeocodeUnavailable    = "Weather data unavailable for %s. Please check local weather services."
	msgForecastEmpty         = "Forecast data unavailable for %s. Please check local weather services."
	msgForecastTomorrowEmpty = "Tomorrow's forecast is not available yet for %s. Please check local weather services."
	msgClimateNoData         = "Weather data for %s is available; check local sources for specific conditions."
	msgForecastTomorrow      = "Tomorrow's forecast for %s"
	msgForecastWhen          = "Forecast for %s in %s"
	msgForecastNext24Hours   = "Next 24 hours forecast for %s"
)

// Climate sentences.
const (
	msgClimateSeason  = "%s in %s typically has %s; this is a seasonal snapshot based on forecast data."
	msgClimateGeneric = "Weather information for %s in %s is available; this is a seasonal snapshot based on forecast data."
	msgClimateAverage = "Next few days in %s: %.1f°C average, %s; this is a seasonal snapshot based on forecast data."
)

// Fetch error messages.
const (
	msgTimeout             = "The forecast service seems to be overloaded. We'll try again in a moment or continue without weather data."
	msgNotFound            = "I couldn't find the city '%s'. Would you like to try an English name or a more precise name?"
	msgWeatherUnavailable  = "Weather service temporarily unavailable."
	msgForecastUnavailable = "Forecast service temporarily unavailable."
	msgWeatherUnknown      = "Weather data unavailable."
	msgForecastUnknown     = "Forecast data unavailable."
)

const (
	bucketsPerDay  = 8 // 3-hour forecast entries in 24 hours
	unknownCountry = "Unknown"
)

type seasonEntry struct {
	token  string
	season string
}

// monthSeasons is matched in order as a substring of the lowercased time reference.
var monthSeasons = []seasonEntry{
	{"january", "winter"}, {"jan", "winter"},
	{"february", "winter"}, {"feb", "winter"},
	{"march", "spring"}, {"mar", "spring"},
	{"april", "spring"}, {"apr", "spring"},
	{"may", "spring"},
	{"june", "summer"}, {"jun", "summer"},
	{"july", "summer"}, {"jul", "summer"},
	{"august", "summer"}, {"aug", "summer"},
	{"september", "autumn"}, {"sep", "autumn"}, {"sept", "autumn"},
	{"october", "autumn"}, {"oct", "autumn"},
	{"november", "autumn"}, {"nov", "autumn"},
	{"december", "winter"}, {"dec", "winter"},
	{"winter", "winter"}, {"spring", "spring"}, {"summer", "summer"}, {"autumn", "autumn"}, {"fall", "autumn"},
}

var seasonInfo = map[string]string{
	"winter": "cold weather, possible snow",
	"spring": "mild temperatures, occasional rain",
	"summer": "warm to hot weather, generally dry",
	"autumn": "cooling temperatures, variable weather",
}
