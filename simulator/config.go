package simulator

// Config is a configuration for the acquiring bank simulator
type Config struct {
	HTTPAddr string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
	}
}
