package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"oil_heating/internal/models"
)

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	if out := normalizeToUTC(time.Time{}); !out.IsZero() {
		t.Fatalf("zero time must stay zero, got %v", out)
	}
	in := time.Date(2025, time.August, 1, 12, 34, 56, 0, time.FixedZone("UTC+3", 3*3600))
	out := normalizeToUTC(in)
	exp := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
	if out.Location() != time.UTC || !out.Equal(exp) {
		t.Fatalf("got %v, want %v", out, exp)
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	fromLocal := time.Date(2025, time.September, 10, 10, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	toUTC := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       RunFilter
		wantFrom time.Time
		wantKind string
		wantErr  error
	}{
		{name: "all zero ok", in: RunFilter{}},
		{
			name: "from after to",
			in: RunFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: errInvalidTimeRange,
		},
		{
			name:     "normalize tz and kind",
			in:       RunFilter{From: fromLocal, To: toUTC, Kind: " sweep "},
			wantFrom: time.Date(2025, time.September, 10, 8, 0, 0, 0, time.UTC),
			wantKind: models.RunSweep,
		},
		{name: "unknown kind", in: RunFilter{Kind: "telemetry"}, wantErr: errInvalidKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeAndValidateFilter(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if !tc.wantFrom.IsZero() && !got.From.Equal(tc.wantFrom) {
				t.Fatalf("from: got %v; want %v", got.From, tc.wantFrom)
			}
			if got.Kind != tc.wantKind {
				t.Fatalf("kind: got %q; want %q", got.Kind, tc.wantKind)
			}
		})
	}
}

func TestRunLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	frepo := &fakeRunRepo{listResp: []models.Run{{RunID: "1"}}}
	svc := NewRunLogService(frepo)

	from := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	out, err := svc.List(context.Background(), RunFilter{From: from, Kind: "calculation", UserID: 9, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].RunID != "1" {
		t.Fatalf("unexpected runs: %+v", out)
	}
	if frepo.listCalls != 1 {
		t.Fatalf("repo List should be called once, got %d", frepo.listCalls)
	}
	want := time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)
	if !frepo.gotFilter.From.Equal(want) || frepo.gotFilter.Kind != models.RunCalculation ||
		frepo.gotFilter.UserID != 9 || frepo.gotFilter.Limit != 20 {
		t.Fatalf("unexpected filter passed to repo: %+v", frepo.gotFilter)
	}
}

func TestRunLogService_List_ValidationErrorSkipsRepo(t *testing.T) {
	t.Parallel()

	frepo := &fakeRunRepo{}
	svc := NewRunLogService(frepo)

	_, err := svc.List(context.Background(), RunFilter{Kind: "nope"})
	if !errors.Is(err, errInvalidKind) {
		t.Fatalf("expected errInvalidKind; got %v", err)
	}
	if frepo.listCalls != 0 {
		t.Fatalf("repo should not be called, calls=%d", frepo.listCalls)
	}
}

func TestRunLogService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &fakeRunRepo{listErr: errors.New("db down")}
	svc := NewRunLogService(frepo)

	if _, err := svc.List(context.Background(), RunFilter{}); !errors.Is(err, frepo.listErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}

func TestRunLogService_Get_TrimsID(t *testing.T) {
	t.Parallel()

	frepo := &fakeRunRepo{appended: []models.Run{{RunID: "abc"}}}
	svc := NewRunLogService(frepo)

	run, err := svc.Get(context.Background(), "  abc ")
	if err != nil || run == nil || run.RunID != "abc" {
		t.Fatalf("unexpected: %+v, %v", run, err)
	}
	if frepo.gotID != "abc" {
		t.Fatalf("id not trimmed: %q", frepo.gotID)
	}
}
