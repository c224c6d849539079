package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"eventhub-backend/dto"
	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/controllers"
	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/qrpayload"
	"eventhub-backend/internal/repository"
	"eventhub-backend/internal/routes"
	"eventhub-backend/internal/services"
)

const secret = "controller-secret"

type harness struct {
	app *fiber.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clk := clock.NewManual(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	events := repository.NewMemoryEventStore(clk)
	enc, err := qrpayload.NewSealedEncoder("qr-secret")
	if err != nil {
		t.Fatalf("NewSealedEncoder: %v", err)
	}
	query := services.NewEventQueryService(events)

	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler})
	app.Use(middleware.JWTCaller(secret))
	routes.Setup(app, routes.Services{
		Query:     query,
		Catalog:   services.NewCatalogService(events, clk),
		Resources: services.NewResourceService(events),
		Tickets:   services.NewTicketService(events, repository.NewMemoryTicketStore(), enc, clk),
		Analytics: services.NewAnalyticsService(query),
	})
	return &harness{app: app}
}

func token(t *testing.T, uid string, role models.Role) string {
	t.Helper()
	tok, err := middleware.SignToken(secret, uid, role, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	return tok
}

// do sends a request and decodes a JSON answer into out when out is not nil.
func (h *harness) do(t *testing.T, method, path, tok string, body, out any) int {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := h.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if out != nil && resp.StatusCode < 300 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode
}

func (h *harness) createEvent(t *testing.T, tok string) string {
	t.Helper()
	var ev dto.EventResponse
	code := h.do(t, "POST", "/events", tok, map[string]any{
		"title":      "Jazz Night",
		"type":       "concert",
		"start_date": "2025-06-01T18:00:00Z",
		"end_date":   "2025-06-01T23:00:00Z",
	}, &ev)
	if code != fiber.StatusCreated {
		t.Fatalf("create event: status %d", code)
	}
	return ev.ID
}

func TestAuthGate(t *testing.T) {
	h := newHarness(t)

	if code := h.do(t, "GET", "/events", "", nil, nil); code != fiber.StatusUnauthorized {
		t.Fatalf("anonymous listing: %d", code)
	}
	if code := h.do(t, "GET", "/events", "not-a-jwt", nil, nil); code != fiber.StatusUnauthorized {
		t.Fatalf("bad token: %d", code)
	}
	if code := h.do(t, "GET", "/events/public", "", nil, nil); code != fiber.StatusOK {
		t.Fatalf("public listing: %d", code)
	}
}

func TestEventOwnership(t *testing.T) {
	h := newHarness(t)
	owner := token(t, "org-1", models.RoleOrganizer)
	id := h.createEvent(t, owner)

	t.Run("attendee cannot create", func(t *testing.T) {
		code := h.do(t, "POST", "/events", token(t, "u-1", models.RoleAttendee), map[string]any{"title": "x"}, nil)
		if code != fiber.StatusForbidden {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		code := h.do(t, "POST", "/events", owner, map[string]any{"type": "concert"}, nil)
		if code != fiber.StatusBadRequest {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("other organizer is forbidden", func(t *testing.T) {
		if code := h.do(t, "GET", "/events/"+id, token(t, "org-2", models.RoleOrganizer), nil, nil); code != fiber.StatusForbidden {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("admin may read", func(t *testing.T) {
		var ev dto.EventResponse
		if code := h.do(t, "GET", "/events/"+id, token(t, "root", models.RoleAdmin), nil, &ev); code != fiber.StatusOK {
			t.Fatalf("got %d", code)
		}
		if ev.OrganizerID != "org-1" || ev.Status != models.StatusDraft {
			t.Fatalf("unexpected event %+v", ev)
		}
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		if code := h.do(t, "GET", "/events/665f1f77bcf86cd799439011", owner, nil, nil); code != fiber.StatusNotFound {
			t.Fatalf("unknown: %d", code)
		}
		if code := h.do(t, "GET", "/events/nope", owner, nil, nil); code != fiber.StatusBadRequest {
			t.Fatalf("malformed: %d", code)
		}
	})

	t.Run("draft is not public", func(t *testing.T) {
		if code := h.do(t, "GET", "/events/"+id+"/public", "", nil, nil); code != fiber.StatusNotFound {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("archive then publish conflicts", func(t *testing.T) {
		other := h.createEvent(t, owner)
		if code := h.do(t, "POST", "/events/"+other+"/archive", owner, nil, nil); code != fiber.StatusOK {
			t.Fatalf("archive: %d", code)
		}
		if code := h.do(t, "POST", "/events/"+other+"/publish", owner, nil, nil); code != fiber.StatusConflict {
			t.Fatalf("publish archived: %d", code)
		}
	})
}

func TestTicketFlow(t *testing.T) {
	h := newHarness(t)
	owner := token(t, "org-1", models.RoleOrganizer)
	buyer := token(t, "u-1", models.RoleAttendee)
	id := h.createEvent(t, owner)

	var types []models.EventTicket
	if code := h.do(t, "PUT", "/events/"+id+"/ticket-types", owner, map[string]any{
		"name": "General", "quantity": 2, "price": 25,
	}, &types); code != fiber.StatusOK || len(types) != 1 {
		t.Fatalf("upsert ticket type: %d %v", code, types)
	}
	order := map[string]any{"event_id": id, "ticket_type_id": types[0].ID, "quantity": 2}

	if code := h.do(t, "POST", "/tickets", buyer, order, nil); code != fiber.StatusConflict {
		t.Fatalf("buying from a draft: %d", code)
	}
	if code := h.do(t, "POST", "/events/"+id+"/publish", owner, nil, nil); code != fiber.StatusOK {
		t.Fatalf("publish: %d", code)
	}

	var page models.PagedResult[models.PublicEventSummary]
	if code := h.do(t, "GET", "/events/public", "", nil, &page); code != fiber.StatusOK || page.TotalCount != 1 {
		t.Fatalf("public listing: %d %+v", code, page)
	}

	var issued dto.TicketResponse
	if code := h.do(t, "POST", "/tickets", buyer, order, &issued); code != fiber.StatusCreated {
		t.Fatalf("issue: %d", code)
	}
	ticket := issued.IssuedTicket
	if ticket.UserID != "u-1" || ticket.QR == "" || issued.Total != 50 {
		t.Fatalf("unexpected ticket %+v", issued)
	}

	order["quantity"] = 1
	if code := h.do(t, "POST", "/tickets", token(t, "u-2", models.RoleAttendee), order, nil); code != fiber.StatusConflict {
		t.Fatalf("sold out: %d", code)
	}

	var mine models.PagedResult[models.IssuedTicket]
	if code := h.do(t, "GET", "/tickets", buyer, nil, &mine); code != fiber.StatusOK || mine.TotalCount != 1 {
		t.Fatalf("my tickets: %d %+v", code, mine)
	}

	t.Run("only holder or manager reads the ticket", func(t *testing.T) {
		path := "/tickets/" + ticket.ID.Hex()
		if code := h.do(t, "GET", path, buyer, nil, nil); code != fiber.StatusOK {
			t.Fatalf("holder: %d", code)
		}
		if code := h.do(t, "GET", path, owner, nil, nil); code != fiber.StatusOK {
			t.Fatalf("organizer: %d", code)
		}
		if code := h.do(t, "GET", path, token(t, "u-2", models.RoleAttendee), nil, nil); code != fiber.StatusForbidden {
			t.Fatalf("stranger: %d", code)
		}
	})

	t.Run("scan is one-way", func(t *testing.T) {
		scan := map[string]any{"payload": ticket.QR}
		if code := h.do(t, "POST", "/tickets/scan", buyer, scan, nil); code != fiber.StatusForbidden {
			t.Fatalf("holder scanning: %d", code)
		}
		var scanned models.IssuedTicket
		if code := h.do(t, "POST", "/tickets/scan", owner, scan, &scanned); code != fiber.StatusOK || !scanned.IsScanned {
			t.Fatalf("first scan: %d %+v", code, scanned)
		}
		if code := h.do(t, "POST", "/tickets/"+ticket.ID.Hex()+"/scan", owner, nil, nil); code != fiber.StatusConflict {
			t.Fatalf("second scan: %d", code)
		}
		if code := h.do(t, "POST", "/tickets/scan", owner, map[string]any{"payload": "tkt1.garbage"}, nil); code != fiber.StatusBadRequest {
			t.Fatalf("garbage payload: %d", code)
		}
	})
}

func TestSupplierReservations(t *testing.T) {
	h := newHarness(t)
	owner := token(t, "org-1", models.RoleOrganizer)
	supplier := token(t, "sup-1", models.RoleSupplier)
	id := h.createEvent(t, owner)

	var list []models.Resource
	if code := h.do(t, "PUT", "/events/"+id+"/resources", owner, map[string]any{
		"name": "Chairs", "quantity": 5, "supplier_id": "sup-1", "reserved": 4,
	}, &list); code != fiber.StatusOK || len(list) != 1 {
		t.Fatalf("upsert: %d %v", code, list)
	}
	if list[0].Reserved != 0 {
		t.Fatalf("reserved taken from input: %d", list[0].Reserved)
	}
	path := "/events/" + id + "/resources/" + list[0].ID

	var r models.Resource
	if code := h.do(t, "POST", path+"/reserve", supplier, map[string]any{"quantity": 3}, &r); code != fiber.StatusOK || r.Reserved != 3 {
		t.Fatalf("reserve: %d %+v", code, r)
	}
	if code := h.do(t, "POST", path+"/reserve", supplier, map[string]any{"quantity": 3}, nil); code != fiber.StatusConflict {
		t.Fatalf("over capacity: %d", code)
	}
	if code := h.do(t, "POST", path+"/reserve", token(t, "sup-2", models.RoleSupplier), map[string]any{"quantity": 1}, nil); code != fiber.StatusForbidden {
		t.Fatalf("other supplier: %d", code)
	}
	if code := h.do(t, "POST", path+"/release", owner, map[string]any{"quantity": 0}, nil); code != fiber.StatusBadRequest {
		t.Fatalf("zero release: %d", code)
	}
	if code := h.do(t, "POST", path+"/release", owner, map[string]any{"quantity": 2}, &r); code != fiber.StatusOK || r.Reserved != 1 {
		t.Fatalf("release: %d %+v", code, r)
	}

	// unassigning the supplier revokes their access
	if code := h.do(t, "PUT", "/events/"+id+"/resources", owner, map[string]any{
		"id": list[0].ID, "name": "Chairs", "quantity": 5,
	}, &list); code != fiber.StatusOK || list[0].SupplierID != "" {
		t.Fatalf("unassign: %d %v", code, list)
	}
	if code := h.do(t, "POST", path+"/reserve", supplier, map[string]any{"quantity": 1}, nil); code != fiber.StatusForbidden {
		t.Fatalf("unassigned supplier: %d", code)
	}
}

func TestOrganizerAnalytics(t *testing.T) {
	h := newHarness(t)
	owner := token(t, "org-1", models.RoleOrganizer)
	h.createEvent(t, owner)

	var res models.OrganizerAnalytics
	if code := h.do(t, "GET", "/analytics/organizer?from=2025-01-01&to=2026-01-01", owner, nil, &res); code != fiber.StatusOK {
		t.Fatalf("own analytics: %d", code)
	}
	if res.OrganizerID != "org-1" || len(res.Events) != 1 {
		t.Fatalf("unexpected rollup %+v", res)
	}

	if code := h.do(t, "GET", "/analytics/organizer", token(t, "u-1", models.RoleAttendee), nil, nil); code != fiber.StatusForbidden {
		t.Fatalf("attendee: %d", code)
	}
	if code := h.do(t, "GET", "/analytics/organizer?organizer_id=org-2", owner, nil, nil); code != fiber.StatusForbidden {
		t.Fatalf("someone else's: %d", code)
	}
	if code := h.do(t, "GET", "/analytics/organizer?from=yesterday", owner, nil, nil); code != fiber.StatusBadRequest {
		t.Fatalf("bad window: %d", code)
	}
	if code := h.do(t, "GET", "/analytics/organizer?organizer_id=org-1", token(t, "root", models.RoleAdmin), nil, &res); code != fiber.StatusOK || len(res.Events) != 1 {
		t.Fatalf("admin: %d", code)
	}
}
