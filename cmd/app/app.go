package app

import (
	"os"

	"github.com/Sympa1/qr-code-gen/internal/adapters/config"
	"github.com/Sympa1/qr-code-gen/internal/adapters/controller/cli"
	"github.com/Sympa1/qr-code-gen/internal/adapters/logger"
	"github.com/Sympa1/qr-code-gen/internal/domain/service"
)

type App struct {
	Shell *cli.Shell
}

func New(cfg *config.Config) (*App, error) {
	generatorLog, err := logger.Named("generator")
	if err != nil {
		return nil, err
	}
	shellLog, err := logger.Named("shell")
	if err != nil {
		return nil, err
	}

	generator := service.NewGeneratorService(generatorLog)
	shell := cli.New(generator, shellLog, cfg, os.Stdin, os.Stdout)

	return &App{Shell: shell}, nil
}

func (a *App) Run() error {
	return a.Shell.Run()
}
