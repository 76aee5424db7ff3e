package gateway

// Config is a configuration for the payment gateway application
type Config struct {
	HTTPAddr string
	// AcquirerURL is the base URL of the acquiring bank's authorization API.
	AcquirerURL string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:8080",
		AcquirerURL: "http://localhost:9090",
	}
}
