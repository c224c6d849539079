package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

func TestEventQueryService_GetPage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	for i := 0; i < 23; i++ {
		f.seedEvent(t, models.Event{OrganizerID: "org-1", StartDate: day(2025, 1, 1).AddDate(0, 0, i)})
	}
	f.seedEvent(t, models.Event{OrganizerID: "org-2", Type: "talk"})
	svc := NewEventQueryService(f.store)

	q := models.EventQuery{OrganizerID: "org-1"}
	var prev time.Time
	for page, want := range []int{10, 10, 3, 0} {
		res, err := svc.GetPage(ctx, q, page, 10)
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if len(res.Items) != want {
			t.Fatalf("page %d: expected %d items, got %d", page, want, len(res.Items))
		}
		if res.TotalCount != 23 {
			t.Fatalf("page %d: expected total 23, got %d", page, res.TotalCount)
		}
		for _, it := range res.Items {
			if it.StartDate.Before(prev) {
				t.Fatalf("page %d: items out of start-date order", page)
			}
			prev = it.StartDate
		}
	}

	talks, err := svc.GetPage(ctx, models.EventQuery{Category: "talk"}, 0, 10)
	if err != nil || talks.TotalCount != 1 || talks.Items[0].OrganizerID != "org-2" {
		t.Fatalf("category filter: %+v, %v", talks, err)
	}

	for _, bad := range [][2]int{{-1, 10}, {0, 0}, {0, 101}} {
		if _, err := svc.GetPage(ctx, q, bad[0], bad[1]); !errors.Is(err, models.ErrValidation) {
			t.Fatalf("page=%d size=%d: expected validation error, got %v", bad[0], bad[1], err)
		}
	}
}

func TestEventQueryService_PublicViews(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	pub := f.seedEvent(t, models.Event{
		Status:    models.StatusPublished,
		Resources: []models.Resource{{ID: "r1", Name: "Secret", Quantity: 1}},
		Tickets:   []models.EventTicket{{ID: "t1", Name: "GA", Quantity: 2, Sold: 2}},
	})
	draft := f.seedEvent(t, models.Event{Status: models.StatusDraft})
	private := f.seedEvent(t, models.Event{Status: models.StatusPublished, Visibility: models.VisibilityPrivate})
	svc := NewEventQueryService(f.store)

	page, err := svc.GetPublicPage(ctx, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalCount != 1 || page.Items[0].ID != pub.ID {
		t.Fatalf("expected only the public event, got %+v", page)
	}
	if !page.Items[0].Tickets[0].SoldOut {
		t.Fatalf("expected ticket type marked sold out")
	}

	got, err := svc.GetPublicByID(ctx, pub.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != pub.Title {
		t.Fatalf("unexpected public event %+v", got)
	}
	for _, hidden := range []*models.Event{draft, private} {
		if _, err := svc.GetPublicByID(ctx, hidden.ID.Hex()); !errors.Is(err, models.ErrEventNotFound) {
			t.Fatalf("expected hidden event to be not found, got %v", err)
		}
	}

	title, err := svc.GetTitleOnly(ctx, draft.ID.Hex())
	if err != nil || title.Title != draft.Title || title.ID != draft.ID {
		t.Fatalf("GetTitleOnly = %+v, %v", title, err)
	}
}

func TestEventQueryService_GetByDateRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	ev := f.seedEvent(t, models.Event{Status: models.StatusPublished, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)})
	f.seedEvent(t, models.Event{Status: models.StatusDraft, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)})
	svc := NewEventQueryService(f.store)

	hits, err := svc.GetByDateRange(ctx, day(2025, 6, 2), day(2025, 6, 10))
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].ID != ev.ID {
		t.Fatalf("expected partial overlap to match, got %+v", hits)
	}

	miss, err := svc.GetByDateRange(ctx, day(2025, 7, 1), day(2025, 7, 31))
	if err != nil {
		t.Fatal(err)
	}
	if len(miss) != 0 {
		t.Fatalf("expected no match in July, got %d", len(miss))
	}

	edge, err := svc.GetByDateRange(ctx, day(2025, 6, 3), day(2025, 6, 3))
	if err != nil || len(edge) != 1 {
		t.Fatalf("expected inclusive end to match, got %d (%v)", len(edge), err)
	}

	if _, err := svc.GetByDateRange(ctx, day(2025, 6, 10), day(2025, 6, 2)); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for start > end, got %v", err)
	}
}

func TestEventQueryService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	ev := f.seedEvent(t, models.Event{
		OrganizerID: "org-1",
		Status:      models.StatusPublished,
		Resources:   []models.Resource{{ID: "r1", Name: "Chairs", Quantity: 5, Reserved: 2}},
	})
	svc := NewEventQueryService(f.store)

	f.clock.Advance(time.Hour)
	patch := models.EventPatch(validInput())
	patch.Title = "Renamed"
	patch.Visibility = models.VisibilityPrivate

	ok, err := svc.Update(ctx, ev.ID.Hex(), patch)
	if err != nil || !ok {
		t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
	}
	stored := f.load(t, ev)
	if stored.Title != "Renamed" || stored.Visibility != models.VisibilityPrivate || stored.Type != "festival" {
		t.Fatalf("patch not applied: %+v", stored)
	}
	if stored.OrganizerID != "org-1" || stored.Status != models.StatusPublished || stored.Resources[0].Reserved != 2 {
		t.Fatalf("patch touched protected fields: %+v", stored)
	}
	if !stored.UpdatedAt.Equal(testNow.Add(time.Hour)) {
		t.Fatalf("expected updated_at to move, got %v", stored.UpdatedAt)
	}

	if _, err := svc.Update(ctx, bson.NewObjectID().Hex(), patch); !errors.Is(err, models.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	patch.Title = ""
	if _, err := svc.Update(ctx, ev.ID.Hex(), patch); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEventQueryService_ListForOrganizer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedEvent(t, models.Event{OrganizerID: "org-1", StartDate: day(2025, 5, 31)})
	f.seedEvent(t, models.Event{OrganizerID: "org-1", StartDate: day(2025, 6, 1)})
	f.seedEvent(t, models.Event{OrganizerID: "org-1", StartDate: day(2025, 7, 1)})
	f.seedEvent(t, models.Event{OrganizerID: "org-2", StartDate: day(2025, 6, 5)})
	svc := NewEventQueryService(f.store)

	all, err := svc.ListForOrganizer(ctx, "org-1", nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 events without window, got %d (%v)", len(all), err)
	}

	june, err := svc.ListForOrganizer(ctx, "org-1", &models.Window{From: day(2025, 6, 1), To: day(2025, 7, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if len(june) != 1 || !june[0].StartDate.Equal(day(2025, 6, 1)) {
		t.Fatalf("expected only the June 1 event in [Jun 1, Jul 1), got %+v", june)
	}

	if _, err := svc.ListForOrganizer(ctx, "", nil); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for blank organizer, got %v", err)
	}
	if _, err := svc.ListForOrganizer(ctx, "org-1", &models.Window{From: day(2025, 7, 1), To: day(2025, 6, 1)}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for inverted window, got %v", err)
	}
}
