package service

import (
	"context"

	"oil_heating/internal/models"
	"oil_heating/internal/repository"
)

// fakeRunRepo is a minimal in-memory stand-in for repository.RunRepo.
type fakeRunRepo struct {
	appendErr error
	listErr   error
	appended  []models.Run
	listCalls int
	gotFilter repository.RunFilter
	listResp  []models.Run
	gotID     string
}

func (f *fakeRunRepo) Append(ctx context.Context, r models.Run) (string, error) {
	if f.appendErr != nil {
		return "", f.appendErr
	}
	if r.RunID == "" {
		r.RunID = "run-" + string(rune('a'+len(f.appended)))
	}
	f.appended = append(f.appended, r)
	return r.RunID, nil
}

func (f *fakeRunRepo) Get(ctx context.Context, id string) (*models.Run, error) {
	f.gotID = id
	for i := range f.appended {
		if f.appended[i].RunID == id {
			return &f.appended[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRunRepo) List(ctx context.Context, rf repository.RunFilter) ([]models.Run, error) {
	f.listCalls++
	f.gotFilter = rf
	return f.listResp, f.listErr
}
