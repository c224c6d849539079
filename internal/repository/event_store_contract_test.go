package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

var contractNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleEvent(organizer string, start time.Time) *models.Event {
	return &models.Event{
		OrganizerID: organizer,
		Title:       "Sample",
		Type:        "concert",
		Visibility:  models.VisibilityPublic,
		Status:      models.StatusPublished,
		StartDate:   start,
		EndDate:     start.Add(48 * time.Hour),
		Resources:   []models.Resource{{ID: "r1", Name: "Seats", Quantity: 5, Price: 2}},
		Tickets:     []models.EventTicket{{ID: "t1", Name: "GA", Quantity: 3, Price: 10}},
		Programs:    []models.Program{{ID: "p1", Name: "Opening"}},
	}
}

// runEventStoreContract checks behaviour both stores must share.
func runEventStoreContract(t *testing.T, newStore func(t *testing.T) EventStore) {
	ctx := context.Background()

	t.Run("insert and load projections", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if ev.ID.IsZero() {
			t.Fatalf("expected id assigned")
		}

		full, err := s.Load(ctx, ev.ID, models.ProjectFull)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(full.Resources) != 1 || len(full.Programs) != 1 || full.OrganizerID != "org-1" {
			t.Fatalf("unexpected full load %+v", full)
		}

		sum, err := s.Load(ctx, ev.ID, models.ProjectSummary)
		if err != nil {
			t.Fatal(err)
		}
		if len(sum.Resources) != 0 || len(sum.Programs) != 0 || len(sum.Tickets) != 1 {
			t.Fatalf("summary projection kept nested data: %+v", sum)
		}

		pub, err := s.Load(ctx, ev.ID, models.ProjectPublic)
		if err != nil {
			t.Fatal(err)
		}
		if len(pub.Resources) != 0 || pub.OrganizerID != "" || len(pub.Programs) != 1 {
			t.Fatalf("public projection leaked private data: %+v", pub)
		}

		if _, err := s.Load(ctx, bson.NewObjectID(), models.ProjectFull); err != models.ErrEventNotFound {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("guarded increment holds under contention", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatal(err)
		}

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			matched int64
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n, err := s.ApplyAtomicIncrement(ctx, ev.ID, models.ArrayResources, "r1", 1, models.ReservedGuard)
				if err != nil {
					t.Errorf("increment: %v", err)
					return
				}
				mu.Lock()
				matched += n
				mu.Unlock()
			}()
		}
		wg.Wait()

		if matched != 5 {
			t.Fatalf("expected 5 matched increments, got %d", matched)
		}
		got, _ := s.Load(ctx, ev.ID, models.ProjectFull)
		if got.Resources[0].Reserved != 5 {
			t.Fatalf("expected reserved=5, got %d", got.Resources[0].Reserved)
		}

		n, err := s.ApplyAtomicIncrement(ctx, ev.ID, models.ArrayResources, "r1", -6, models.ReservedGuard)
		if err != nil || n != 0 {
			t.Fatalf("decrement below zero matched %d (%v)", n, err)
		}
		n, err = s.ApplyAtomicIncrement(ctx, ev.ID, models.ArrayTickets, "t1", 3, models.SoldGuard)
		if err != nil || n != 1 {
			t.Fatalf("sold increment matched %d (%v)", n, err)
		}
		n, _ = s.ApplyAtomicIncrement(ctx, ev.ID, models.ArrayTickets, "missing", 1, models.SoldGuard)
		if n != 0 {
			t.Fatalf("increment on missing element matched")
		}
	})

	t.Run("element update keeps the guarded counter", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		ev.Resources[0].Reserved = 3
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatal(err)
		}

		next := models.Resource{ID: "r1", Name: "Chairs", Quantity: 4, Reserved: 0}
		n, err := s.ApplyArrayElementUpdate(ctx, ev.ID, models.ArrayResources, "r1", next, &models.ReservedGuard)
		if err != nil || n != 1 {
			t.Fatalf("update matched %d (%v)", n, err)
		}
		got, _ := s.Load(ctx, ev.ID, models.ProjectFull)
		if r := got.Resources[0]; r.Name != "Chairs" || r.Quantity != 4 || r.Reserved != 3 {
			t.Fatalf("unexpected resource after update %+v", r)
		}

		next.Quantity = 2
		n, err = s.ApplyArrayElementUpdate(ctx, ev.ID, models.ArrayResources, "r1", next, &models.ReservedGuard)
		if err != nil || n != 0 {
			t.Fatalf("update below reserved matched %d (%v)", n, err)
		}

		n, _ = s.ApplyArrayElementUpdate(ctx, ev.ID, models.ArrayPrograms, "nope", models.Program{ID: "nope", Name: "x"}, nil)
		if n != 0 {
			t.Fatalf("update on missing program matched")
		}
	})

	t.Run("element update clears fields left empty", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		ev.Resources[0].SupplierID = "sup-1"
		ev.Resources[0].Unit = "pcs"
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatal(err)
		}

		next := models.Resource{ID: "r1", Name: "Seats", Quantity: 5, Price: 2}
		n, err := s.ApplyArrayElementUpdate(ctx, ev.ID, models.ArrayResources, "r1", next, &models.ReservedGuard)
		if err != nil || n != 1 {
			t.Fatalf("update matched %d (%v)", n, err)
		}
		got, err := s.Load(ctx, ev.ID, models.ProjectFull)
		if err != nil {
			t.Fatal(err)
		}
		if r := got.Resources[0]; r.SupplierID != "" || r.Unit != "" {
			t.Fatalf("replaced element kept old fields: %+v", r)
		}
	})

	t.Run("replace whole", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatal(err)
		}

		next := sampleEvent("org-1", contractNow.Add(24*time.Hour))
		next.Title = "Renamed"
		next.Resources = nil
		if err := s.ReplaceWhole(ctx, ev.ID, next); err != nil {
			t.Fatalf("replace: %v", err)
		}
		got, err := s.Load(ctx, ev.ID, models.ProjectFull)
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != ev.ID || got.Title != "Renamed" || !got.StartDate.Equal(next.StartDate) {
			t.Fatalf("unexpected event after replace %+v", got)
		}
		if len(got.Resources) != 0 {
			t.Fatalf("resources should be empty, got %+v", got.Resources)
		}
		if got.UpdatedAt.IsZero() {
			t.Fatalf("replace did not stamp updated_at")
		}

		if err := s.ReplaceWhole(ctx, bson.NewObjectID(), sampleEvent("org-1", contractNow)); err != models.ErrEventNotFound {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("push pull and status", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		ev.Status = models.StatusDraft
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatal(err)
		}

		if n, err := s.PushArrayElement(ctx, ev.ID, models.ArrayPrograms, models.Program{ID: "p2", Name: "Closing"}); err != nil || n != 1 {
			t.Fatalf("push matched %d (%v)", n, err)
		}
		if n, _ := s.PullArrayElement(ctx, ev.ID, models.ArrayPrograms, "p1"); n != 1 {
			t.Fatalf("pull existing matched %d", n)
		}
		if n, _ := s.PullArrayElement(ctx, ev.ID, models.ArrayPrograms, "p1"); n != 0 {
			t.Fatalf("pull missing matched %d", n)
		}
		got, _ := s.Load(ctx, ev.ID, models.ProjectFull)
		if len(got.Programs) != 1 || got.Programs[0].ID != "p2" {
			t.Fatalf("unexpected programs %+v", got.Programs)
		}

		from := []models.EventStatus{models.StatusDraft}
		if n, _ := s.TransitionStatus(ctx, ev.ID, from, models.StatusPublished); n != 1 {
			t.Fatalf("transition matched %d", n)
		}
		if n, _ := s.TransitionStatus(ctx, ev.ID, from, models.StatusPublished); n != 0 {
			t.Fatalf("repeat transition matched %d", n)
		}

		if n, err := s.Delete(ctx, ev.ID); err != nil || n != 1 {
			t.Fatalf("delete returned %d (%v)", n, err)
		}
		if n, _ := s.Delete(ctx, ev.ID); n != 0 {
			t.Fatalf("second delete returned %d", n)
		}
	})

	t.Run("find filters sorts and pages", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < 5; i++ {
			if err := s.Insert(ctx, sampleEvent("org-1", contractNow.AddDate(0, 0, 4-i))); err != nil {
				t.Fatal(err)
			}
		}
		other := sampleEvent("org-2", contractNow)
		other.Visibility = models.VisibilityPrivate
		if err := s.Insert(ctx, other); err != nil {
			t.Fatal(err)
		}

		f := EventFilter{OrganizerID: "org-1"}
		n, err := s.Count(ctx, f)
		if err != nil || n != 5 {
			t.Fatalf("count = %d (%v)", n, err)
		}
		page, err := s.Find(ctx, f, models.ProjectSummary, 1, 2)
		if err != nil || len(page) != 2 {
			t.Fatalf("find page = %d (%v)", len(page), err)
		}
		if !page[0].StartDate.Equal(contractNow.AddDate(0, 0, 1)) || !page[1].StartDate.Equal(contractNow.AddDate(0, 0, 2)) {
			t.Fatalf("unexpected order %v, %v", page[0].StartDate, page[1].StartDate)
		}

		overlap := EventFilter{OverlapStart: contractNow.AddDate(0, 0, 5), OverlapEnd: contractNow.AddDate(0, 0, 9)}
		hits, err := s.Find(ctx, overlap, models.ProjectFull, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		// Events run two days, so only those starting on days 3 and 4 reach day 5.
		if len(hits) != 2 || !hits[0].StartDate.Equal(contractNow.AddDate(0, 0, 3)) || !hits[1].StartDate.Equal(contractNow.AddDate(0, 0, 4)) {
			t.Fatalf("overlap returned %d events", len(hits))
		}

		pub, _ := s.Count(ctx, EventFilter{Visibility: models.VisibilityPublic, Status: models.StatusPublished})
		if pub != 5 {
			t.Fatalf("expected 5 public events, got %d", pub)
		}
	})

	t.Run("field update", func(t *testing.T) {
		s := newStore(t)
		ev := sampleEvent("org-1", contractNow)
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatal(err)
		}
		n, err := s.ApplyFieldUpdate(ctx, ev.ID, FieldUpdate{FieldTitle: "Renamed", FieldVisibility: models.VisibilityPrivate})
		if err != nil || n != 1 {
			t.Fatalf("field update matched %d (%v)", n, err)
		}
		got, _ := s.Load(ctx, ev.ID, models.ProjectFull)
		if got.Title != "Renamed" || got.Visibility != models.VisibilityPrivate || len(got.Resources) != 1 {
			t.Fatalf("unexpected event after update %+v", got)
		}
		if n, _ := s.ApplyFieldUpdate(ctx, bson.NewObjectID(), FieldUpdate{FieldTitle: "x"}); n != 0 {
			t.Fatalf("update on missing event matched")
		}
	})
}
