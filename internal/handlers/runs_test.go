package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oil_heating/internal/models"
	"oil_heating/internal/service"
)

func TestRunsHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	runs := []models.Run{
		{RunID: "r1", OccurredAt: now, Kind: models.RunCalculation, UserID: 9, Description: "calc"},
		{RunID: "r2", OccurredAt: now.Add(time.Second), Kind: models.RunSweep, UserID: 9, Description: "sweep"},
	}
	log := &mockRunLog{runs: runs}
	s := &service.Service{Authorization: &mockAuth{parseID: 9}, RunLog: log}
	r := newTestRouter(s)

	for _, q := range []string{"from=notatime", "to=31-12-2025", "limit=-1", "limit=x"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/runs?"+q, nil)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/runs?from=2025-08-01&to=2025-08-31&kind=sweep&limit=10", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("runs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count int          `json:"count"`
		Runs  []models.Run `json:"runs"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Runs) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}

	f := log.lastList
	wantTo := time.Date(2025, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !f.From.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) || !f.To.Equal(wantTo) {
		t.Fatalf("unexpected range: %v .. %v", f.From, f.To)
	}
	if f.Kind != "sweep" || f.UserID != 9 || f.Limit != 10 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestRunsHandler_ServiceErrors(t *testing.T) {
	log := &mockRunLog{err: fmt.Errorf("%w: bad kind", service.ErrInvalidFilter)}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 9}, RunLog: log})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/runs?kind=telemetry", nil)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid filter: expected 400, got %d", w.Code)
	}

	log.err = fmt.Errorf("disk full")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("storage error: expected 500, got %d", w.Code)
	}
}

func TestRunsHandler_Get(t *testing.T) {
	log := &mockRunLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 9}, RunLog: log})

	cases := []struct {
		name string
		run  *models.Run
		want int
	}{
		{"own run", &models.Run{RunID: "r1", UserID: 9}, http.StatusOK},
		{"other user's run", &models.Run{RunID: "r1", UserID: 4}, http.StatusNotFound},
		{"missing", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log.run = tc.run
			w := httptest.NewRecorder()
			r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/runs/r1", nil)))
			if w.Code != tc.want {
				t.Fatalf("got %d, want %d", w.Code, tc.want)
			}
			if log.lastID != "r1" {
				t.Fatalf("Get called with %q", log.lastID)
			}
		})
	}
}
