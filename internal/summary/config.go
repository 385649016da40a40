package summary

// Config holds all configuration for the summarization client. Values are
// parsed from the environment by the application config (caarlos0/env tags);
// tests construct Config directly and point Endpoint at an httptest server.
type Config struct {
	// Endpoint receives POST {"data": [...]} and answers {"summary": "..."}.
	Endpoint string `env:"STUDYTIMER_SUMMARY_ENDPOINT" envDefault:"https://oxe9emrp95.execute-api.ap-southeast-2.amazonaws.com/dev/weekly_report"`

	// TimeoutMs bounds the whole call; an expired deadline degrades to the
	// communication-error fallback like any other transport failure.
	TimeoutMs int `env:"STUDYTIMER_SUMMARY_TIMEOUT_MS" envDefault:"10000"`

	// LogCalls enables the audit log of outgoing payloads and responses.
	LogCalls bool `env:"STUDYTIMER_SUMMARY_LOG_CALLS" envDefault:"false"`
}

// DefaultConfig returns a Config with the same defaults the env tags declare.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://oxe9emrp95.execute-api.ap-southeast-2.amazonaws.com/dev/weekly_report",
		TimeoutMs: 10000,
	}
}
