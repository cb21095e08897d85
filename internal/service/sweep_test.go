package service

import (
	"context"
	"errors"
	"testing"

	"oil_heating/internal/models"
	"oil_heating/internal/physics"
)

func TestSweep_LengthMatchesPowersAndZeroPowerIsUnheated(t *testing.T) {
	svc := NewSweepService(&fakeRunRepo{}, 0)
	in := models.DefaultInputs()

	sw, err := svc.Sweep(context.Background(), SweepParams{
		Inputs:      in,
		Powers:      []float64{0, 500, 1000},
		KeepResults: true,
	}, nil)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(sw.Points) != 3 || len(sw.Velocities()) != 3 {
		t.Fatalf("want 3 points, got %d", len(sw.Points))
	}

	first := sw.Points[0].Result
	if first.NewDensity != in.Fluid.Density || first.NewViscosity != in.Fluid.Viscosity {
		t.Fatalf("power=0 must keep the initial state: %+v", first)
	}
	if sw.Points[0].MaxVelocityNew != first.MaxVelocityInitial {
		t.Fatalf("power=0 velocity should equal the unheated one")
	}
	for i, pt := range sw.Points {
		if pt.Index != i || pt.PlotX != pt.Power/models.PlotScale {
			t.Fatalf("bad point %d: %+v", i, pt)
		}
	}
	if sw.Inputs != in {
		t.Fatalf("sweep must not alter the base inputs: %+v", sw.Inputs)
	}
}

func TestSweep_MatchesIndependentRuns(t *testing.T) {
	svc := NewSweepService(&fakeRunRepo{}, 0)
	in := models.DefaultInputs()

	sw, err := svc.Sweep(context.Background(), SweepParams{
		Inputs: in,
		Range:  models.PowerRange{Start: 0, Stop: 1000001, Step: 250000},
	}, nil)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(sw.Points) != 5 {
		t.Fatalf("want 5 points, got %d", len(sw.Points))
	}
	for _, pt := range sw.Points {
		res, err := physics.Run(in.WithPower(pt.Power))
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if res.MaxVelocityNew != pt.MaxVelocityNew {
			t.Fatalf("power %.0f: sweep %v, direct %v", pt.Power, pt.MaxVelocityNew, res.MaxVelocityNew)
		}
		if pt.Result != nil {
			t.Fatalf("results must not be attached unless requested")
		}
	}
}

// At 100 GW the temperature rise underflows the heated viscosity to zero.
const failingPower = 1e11

func TestSweep_StopPolicyReportsPower(t *testing.T) {
	svc := NewSweepService(&fakeRunRepo{}, 0)

	sw, err := svc.Sweep(context.Background(), SweepParams{
		Inputs: models.DefaultInputs(),
		Powers: []float64{0, 100000, failingPower, 2000000},
		Policy: PolicyStop,
	}, nil)

	var se *SweepError
	if !errors.As(err, &se) {
		t.Fatalf("expected SweepError, got %v", err)
	}
	if se.Index != 2 || se.Power != failingPower {
		t.Fatalf("unexpected failing point: %+v", se)
	}
	if !errors.Is(err, physics.ErrPrecondition) {
		t.Fatalf("SweepError should unwrap to the precondition error")
	}
	if len(sw.Points) != 2 {
		t.Fatalf("expected the points before the failure, got %d", len(sw.Points))
	}
}

func TestSweep_SkipPolicyKeepsPositions(t *testing.T) {
	repo := &fakeRunRepo{}
	svc := NewSweepService(repo, 0)

	sw, err := svc.Sweep(context.Background(), SweepParams{
		Inputs: models.DefaultInputs(),
		Powers: []float64{0, failingPower, 100000},
		Policy: PolicySkip,
		Record: true,
	}, nil)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(sw.Points) != 3 || sw.Failures() != 1 {
		t.Fatalf("unexpected points: %+v", sw.Points)
	}
	if !sw.Points[1].Failed || sw.Points[1].Error == "" || sw.Points[1].MaxVelocityNew != 0 {
		t.Fatalf("failed point not marked: %+v", sw.Points[1])
	}
	if sw.Points[2].Failed {
		t.Fatalf("later points must still be computed")
	}

	if sw.RunID == "" || len(repo.appended) != 1 {
		t.Fatalf("sweep should be recorded once")
	}
	sum, ok := repo.appended[0].Summary.(SweepSummary)
	if !ok || sum.Points != 3 || sum.Failures != 1 || sum.LastPower != 100000 {
		t.Fatalf("unexpected summary: %#v", repo.appended[0].Summary)
	}
	if sum.MinMaxVelocity > sum.MaxMaxVelocity {
		t.Fatalf("min above max: %+v", sum)
	}
}

func TestSweep_Validation(t *testing.T) {
	svc := NewSweepService(&fakeRunRepo{}, 10)
	ctx := context.Background()
	in := models.DefaultInputs()

	cases := []struct {
		name string
		p    SweepParams
	}{
		{"unknown policy", SweepParams{Inputs: in, Powers: []float64{1}, Policy: "retry"}},
		{"bad step", SweepParams{Inputs: in, Range: models.PowerRange{Start: 0, Stop: 10, Step: 0}}},
		{"empty range", SweepParams{Inputs: in, Range: models.PowerRange{Start: 5, Stop: 5, Step: 1}}},
		{"too many points", SweepParams{Inputs: in, Range: models.PowerRange{Start: 0, Stop: 100, Step: 1}}},
		{"too many explicit powers", SweepParams{Inputs: in, Powers: make([]float64, 11)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := svc.Sweep(ctx, c.p, nil); !errors.Is(err, ErrInvalidSweep) {
				t.Fatalf("expected ErrInvalidSweep, got %v", err)
			}
		})
	}
}

func TestSweep_CallbackStreamsAndCanAbort(t *testing.T) {
	svc := NewSweepService(&fakeRunRepo{}, 0)
	stop := errors.New("client gone")

	var seen []int
	sw, err := svc.Sweep(context.Background(), SweepParams{
		Inputs: models.DefaultInputs(),
		Powers: []float64{0, 1, 2, 3},
	}, func(pt models.SweepPoint) error {
		seen = append(seen, pt.Index)
		if pt.Index == 1 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if len(seen) != 2 || len(sw.Points) != 2 {
		t.Fatalf("expected two streamed points, got %v", seen)
	}
}

func TestSweep_HonoursCancellation(t *testing.T) {
	svc := NewSweepService(&fakeRunRepo{}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Sweep(ctx, SweepParams{Inputs: models.DefaultInputs(), Powers: []float64{0}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
