package main

import (
	"log"

	"github.com/Sympa1/qr-code-gen/cmd/app"
	"github.com/Sympa1/qr-code-gen/internal/adapters/config"
	"github.com/Sympa1/qr-code-gen/internal/adapters/logger"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Panic(err)
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Log.Panicf("failed to build app: %v", err)
	}

	if err := a.Run(); err != nil {
		logger.Log.Panicf("shell exited with error: %v", err)
	}
}
