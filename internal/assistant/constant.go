package assistant

// Log prefixes
const (
	LogPrefixRespond = "internal.assistant.Respond"
)

// HighDemandMessage replaces gateway apologies before they reach the user or the history.
const HighDemandMessage = "I'm experiencing high demand right now. Please try again in a few minutes, or feel free to ask a more specific question about your travel plans."

// Fact templates
const (
	factCurrent        = "Current weather in %s: %s°C, %s, humidity %d%%"
	factForecastRange  = "Tomorrow's forecast for %s: %s°C to %s°C, %s, humidity %d%%"
	factForecast       = "Forecast for %s: %s°C, %s"
	factClimate        = "Climate in %s: %s"
	factUnavailable    = "Weather information unavailable: %s"
	factPrefixWeather  = "Weather: "
	taskTemplate       = "Task: %s"
	factsBlockTemplate = "Task: %s\n\nFacts:\n- %s"
)

// Configuration
const (
	DefaultMaxHistory = 10 // exchanges; the stored history holds twice as many turns
)
