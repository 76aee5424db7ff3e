package main

import (
	"os"
	"os/signal"
	"syscall"

	"payment-gateway/gateway"

	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := gateway.NewApp(logger, configFromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	app.Shutdown()
}

func configFromEnv() *gateway.Config {
	config := gateway.DefaultConfig()
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		config.HTTPAddr = addr
	}
	if url := os.Getenv("ACQUIRER_URL"); url != "" {
		config.AcquirerURL = url
	}
	return config
}
