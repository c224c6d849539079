package services

import (
	"context"
	"testing"
	"time"

	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/repository"
)

var testNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	clock   *clock.Manual
	store   *repository.MemoryEventStore
	catalog *CatalogService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewManual(testNow)
	store := repository.NewMemoryEventStore(clk)
	return &fixture{clock: clk, store: store, catalog: NewCatalogService(store, clk)}
}

// seedEvent inserts an event straight into the store, bypassing validation.
func (f *fixture) seedEvent(t *testing.T, ev models.Event) *models.Event {
	t.Helper()
	if ev.Status == "" {
		ev.Status = models.StatusDraft
	}
	if ev.Visibility == "" {
		ev.Visibility = models.VisibilityPublic
	}
	if ev.Title == "" {
		ev.Title = "Seeded"
	}
	if ev.Type == "" {
		ev.Type = "concert"
	}
	if ev.StartDate.IsZero() {
		ev.StartDate = day(2025, 6, 1)
	}
	if ev.EndDate.IsZero() {
		ev.EndDate = ev.StartDate
	}
	if err := f.store.Insert(context.Background(), &ev); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return &ev
}

func (f *fixture) load(t *testing.T, ev *models.Event) *models.Event {
	t.Helper()
	got, err := f.store.Load(context.Background(), ev.ID, models.ProjectFull)
	if err != nil {
		t.Fatalf("load event: %v", err)
	}
	return got
}
