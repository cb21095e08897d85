package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"oil_heating/internal/models"
	"oil_heating/internal/repository"
	"oil_heating/internal/repository/db"
)

func TestSQLite_RunsAndUsersRoundTrip(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn)
	ctx := context.Background()

	uid, err := repos.Auth.Create(ctx, "operator", "hash")
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}
	u, err := repos.Auth.GetByUsername(ctx, "operator")
	if err != nil || u == nil || u.ID != uid {
		t.Fatalf("GetByUsername: %+v, %v", u, err)
	}
	if _, err := repos.Auth.Create(ctx, "operator", "other"); !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("duplicate operator: expected ErrUsernameTaken, got %v", err)
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := models.DefaultInputs()
	for i, kind := range []string{models.RunCalculation, models.RunSweep, models.RunCalculation} {
		_, err := repos.RunRepo.Append(ctx, models.Run{
			OccurredAt:  base.Add(time.Duration(i) * time.Minute),
			Kind:        kind,
			UserID:      uid,
			Description: kind,
			Inputs:      in.WithPower(float64(i) * 1000),
			Summary:     map[string]any{"i": i},
		})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	calcs, err := repos.RunRepo.List(ctx, repository.RunFilter{Kind: models.RunCalculation})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(calcs) != 2 {
		t.Fatalf("want 2 calculations, got %d", len(calcs))
	}
	if calcs[1].Inputs.Heater.Power != 2000 {
		t.Fatalf("unexpected order or inputs: %+v", calcs[1].Inputs.Heater)
	}

	windowed, err := repos.RunRepo.List(ctx, repository.RunFilter{From: base.Add(30 * time.Second), To: base.Add(90 * time.Second)})
	if err != nil {
		t.Fatalf("List window: %v", err)
	}
	if len(windowed) != 1 || windowed[0].Kind != models.RunSweep {
		t.Fatalf("unexpected windowed runs: %+v", windowed)
	}

	got, err := repos.RunRepo.Get(ctx, windowed[0].RunID)
	if err != nil || got == nil || got.UserID != uid {
		t.Fatalf("Get: %+v, %v", got, err)
	}
}
