package services

import (
	"cmp"
	"context"
	"slices"
	"sort"

	"eventhub-backend/internal/models"
)

const DefaultTopN = 5

// OrganizerEvents is the read the rollup needs; EventQueryService satisfies it.
type OrganizerEvents interface {
	ListForOrganizer(ctx context.Context, organizerID string, w *models.Window) ([]models.Event, error)
}

type AnalyticsService struct {
	events OrganizerEvents
	topN   int
}

type AnalyticsOption func(*AnalyticsService)

// WithTopN sets how many entries each ranking keeps. n < 1 is ignored.
func WithTopN(n int) AnalyticsOption {
	return func(s *AnalyticsService) {
		if n >= 1 {
			s.topN = n
		}
	}
}

func NewAnalyticsService(events OrganizerEvents, opts ...AnalyticsOption) *AnalyticsService {
	s := &AnalyticsService{events: events, topN: DefaultTopN}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OrganizerRollup aggregates revenue and counters over the organizer's
// events, optionally only those starting inside w.
func (s *AnalyticsService) OrganizerRollup(ctx context.Context, organizerID string, w *models.Window) (*models.OrganizerAnalytics, error) {
	events, err := s.events.ListForOrganizer(ctx, organizerID, w)
	if err != nil {
		return nil, err
	}

	byRevenue := newTopN(s.topN, func(a, b models.EventRollup) bool {
		return rankBefore(a.TotalRevenue, b.TotalRevenue, a.EventID, b.EventID, "", "")
	})
	byTickets := newTopN(s.topN, func(a, b models.EventRollup) bool {
		if a.TicketsSold != b.TicketsSold {
			return a.TicketsSold > b.TicketsSold
		}
		return a.EventID < b.EventID
	})
	topTickets := newTopN(s.topN, func(a, b models.TicketTypeRank) bool {
		return rankBefore(a.Revenue, b.Revenue, a.EventID, b.EventID, a.TicketTypeID, b.TicketTypeID)
	})
	topResources := newTopN(s.topN, func(a, b models.ResourceRank) bool {
		return rankBefore(a.Revenue, b.Revenue, a.EventID, b.EventID, a.ResourceID, b.ResourceID)
	})

	out := &models.OrganizerAnalytics{
		OrganizerID: organizerID,
		Events:      make([]models.EventRollup, 0, len(events)),
	}
	months := map[string]*models.MonthlyRevenue{}
	suppliers := map[string]*models.SupplierRevenue{}

	for i := range events {
		ev := &events[i]
		r := models.EventRollup{EventID: ev.ID.Hex(), Title: ev.Title}

		for _, t := range ev.Tickets {
			rev := float64(t.Sold) * t.Price
			r.TicketRevenue += rev
			r.TicketsSold += t.Sold
			topTickets.offer(models.TicketTypeRank{
				EventID:      r.EventID,
				TicketTypeID: t.ID,
				Name:         t.Name,
				Sold:         t.Sold,
				Price:        t.Price,
				Revenue:      rev,
			})
		}
		for _, res := range ev.Resources {
			rev := float64(res.Reserved) * res.Price
			r.ResourceRevenue += rev
			r.ResourcesReserved += res.Reserved
			topResources.offer(models.ResourceRank{
				EventID:    r.EventID,
				ResourceID: res.ID,
				Name:       res.Name,
				SupplierID: res.SupplierID,
				Reserved:   res.Reserved,
				Price:      res.Price,
				Revenue:    rev,
			})

			sup, ok := suppliers[res.SupplierID]
			if !ok {
				sup = &models.SupplierRevenue{SupplierID: res.SupplierID}
				suppliers[res.SupplierID] = sup
			}
			sup.Revenue += rev
			sup.ResourcesReserved += res.Reserved
			sup.ResourceCount++
		}
		r.TotalRevenue = r.TicketRevenue + r.ResourceRevenue

		out.Events = append(out.Events, r)
		byRevenue.offer(r)
		byTickets.offer(r)

		t := &out.Totals
		t.TicketRevenue += r.TicketRevenue
		t.ResourceRevenue += r.ResourceRevenue
		t.TicketsSold += r.TicketsSold
		t.ResourcesReserved += r.ResourcesReserved
		t.EventCount++

		key := ev.StartDate.UTC().Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &models.MonthlyRevenue{Month: key}
			months[key] = m
		}
		m.TicketRevenue += r.TicketRevenue
		m.ResourceRevenue += r.ResourceRevenue
		m.TotalRevenue += r.TotalRevenue
		m.EventCount++
	}
	out.Totals.Revenue = out.Totals.TicketRevenue + out.Totals.ResourceRevenue

	out.TopEventsByRevenue = byRevenue.items()
	out.TopEventsByTickets = byTickets.items()
	out.TopTicketTypes = topTickets.items()
	out.TopResources = topResources.items()

	// Months are sparse: only those holding at least one event appear.
	out.Monthly = make([]models.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		out.Monthly = append(out.Monthly, *m)
	}
	slices.SortFunc(out.Monthly, func(a, b models.MonthlyRevenue) int { return cmp.Compare(a.Month, b.Month) })

	out.BySupplier = make([]models.SupplierRevenue, 0, len(suppliers))
	for _, sup := range suppliers {
		out.BySupplier = append(out.BySupplier, *sup)
	}
	slices.SortFunc(out.BySupplier, func(a, b models.SupplierRevenue) int {
		if c := cmp.Compare(b.Revenue, a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.SupplierID, b.SupplierID)
	})

	return out, nil
}

// rankBefore orders by revenue descending, then event id, then element id.
func rankBefore(revA, revB float64, evA, evB, elA, elB string) bool {
	if revA != revB {
		return revA > revB
	}
	if evA != evB {
		return evA < evB
	}
	return elA < elB
}

// topN keeps the best n values seen so far, sorted, without holding the
// rest. before must be a strict total order.
type topN[T any] struct {
	n      int
	before func(a, b T) bool
	best   []T
}

func newTopN[T any](n int, before func(a, b T) bool) *topN[T] {
	return &topN[T]{n: n, before: before, best: make([]T, 0, n+1)}
}

func (t *topN[T]) offer(v T) {
	i := sort.Search(len(t.best), func(i int) bool { return t.before(v, t.best[i]) })
	if i >= t.n {
		return
	}
	t.best = slices.Insert(t.best, i, v)
	if len(t.best) > t.n {
		t.best = t.best[:t.n]
	}
}

func (t *topN[T]) items() []T {
	return slices.Clone(t.best)
}
