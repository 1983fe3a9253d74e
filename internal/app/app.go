package app

import (
	"context"
	"log"
	"os"
	"os/signal"

	"roulette_sim/internal/config"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() (err error) {
	if err := config.Load(".env"); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := s.ServiceProvider.Logger()
	defer func() { _ = logger.Sync() }()

	exp := s.ServiceProvider.ExperimentService(ctx)
	defer func() {
		err = multierr.Append(err, s.ServiceProvider.ResultRepository(ctx).Close())
	}()

	if _, err := exp.Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}
	return nil
}
