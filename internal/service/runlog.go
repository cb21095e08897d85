package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oil_heating/internal/models"
	"oil_heating/internal/repository"
)

type RunLogService struct {
	runRepo repository.RunRepo
}

func NewRunLogService(runRepo repository.RunRepo) *RunLogService {
	return &RunLogService{runRepo: runRepo}
}

// ErrInvalidFilter marks history queries that cannot be served.
var ErrInvalidFilter = errors.New("invalid filter")

var (
	errInvalidTimeRange = fmt.Errorf("%w: From must be <= To", ErrInvalidFilter)
	errInvalidKind      = fmt.Errorf("%w: kind must be CALCULATION or SWEEP", ErrInvalidFilter)
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range and kind.
func normalizeAndValidateFilter(f RunFilter) (repository.RunFilter, error) {
	out := repository.RunFilter{
		From:   normalizeToUTC(f.From),
		To:     normalizeToUTC(f.To),
		Kind:   models.NormalizeRunKind(f.Kind),
		UserID: f.UserID,
		Limit:  f.Limit,
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return repository.RunFilter{}, errInvalidTimeRange
	}
	switch out.Kind {
	case "", models.RunCalculation, models.RunSweep:
	default:
		return repository.RunFilter{}, errInvalidKind
	}
	return out, nil
}

func (s *RunLogService) List(ctx context.Context, f RunFilter) ([]models.Run, error) {
	rf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.runRepo.List(ctx, rf)
}

// Get returns a run by ID; a missing run yields (nil, nil).
func (s *RunLogService) Get(ctx context.Context, id string) (*models.Run, error) {
	return s.runRepo.Get(ctx, strings.TrimSpace(id))
}
