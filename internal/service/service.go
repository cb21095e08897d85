package service

import (
	"context"
	"time"

	"oil_heating/internal/models"
	"oil_heating/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Calculation runs the thermo-hydraulic transform for one parameter set.
type Calculation interface {
	Defaults() models.Inputs
	Calculate(ctx context.Context, p CalculationParams) (CalculationOutcome, error)
}

// Sweeper drives the transform across a sequence of heater powers.
type Sweeper interface {
	Sweep(ctx context.Context, p SweepParams, onPoint PointFunc) (models.Sweep, error)
}

// RunLog exposes the history of recorded calculations and sweeps.
type RunLog interface {
	List(ctx context.Context, f RunFilter) ([]models.Run, error)
	Get(ctx context.Context, id string) (*models.Run, error)
}

// Service aggregates all sub-services.
type Service struct {
	Calculation
	Sweeper
	RunLog
	Authorization
}

// Options carries the tunables the services need from configuration.
type Options struct {
	Defaults       models.Inputs
	MaxSweepPoints int
	SigningKey     string
	TokenTTL       time.Duration
}

func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Calculation:   NewCalculationService(repos.RunRepo, opts.Defaults),
		Sweeper:       NewSweepService(repos.RunRepo, opts.MaxSweepPoints),
		RunLog:        NewRunLogService(repos.RunRepo),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
