package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
	"hotel_manager/internal/storage/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	st, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "hotel.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if _, err := st.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	srv := New(5*time.Second, 0)
	srv.MountHandlers(&Handlers{
		Q: app.NewQueryService(st, nil, 0),
		C: app.NewCommandService(st, nil, false),
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func decodeBody(t *testing.T, res *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodGet, ts.URL+"/v1/dashboard", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var st domain.Stats
	decodeBody(t, res, &st)
	if st != (domain.Stats{Reservations: 3, Clients: 3, Rooms: 4}) {
		t.Fatalf("stats: %+v", st)
	}
}

func TestETag_NotModified(t *testing.T) {
	ts := newTestServer(t)

	first := do(t, http.MethodGet, ts.URL+"/v1/rooms", "")
	etag := first.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/rooms", nil)
	req.Header.Set("If-None-Match", etag)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotModified {
		t.Fatalf("want 304, got %d", res.StatusCode)
	}
}

func TestAvailableRooms(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodGet, ts.URL+"/v1/rooms/available?start=2025-05-27&end=2025-05-28", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var rooms []domain.RoomView
	decodeBody(t, res, &rooms)
	for _, r := range rooms {
		if r.ID == 1 {
			t.Fatalf("room 1 is booked on 2025-05-27")
		}
	}
	if len(rooms) != 3 {
		t.Fatalf("want 3 rooms, got %d", len(rooms))
	}
}

func TestAvailableRooms_BadDates(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodGet, ts.URL+"/v1/rooms/available?start=2025-06-10&end=2025-06-01", "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
	var p problem
	decodeBody(t, res, &p)
	if p.Kind != domain.KindValidation {
		t.Fatalf("kind %q", p.Kind)
	}
}

func TestReservationLifecycle(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodPost, ts.URL+"/v1/reservations",
		`{"client_id":1,"room_id":4,"start":"2025-09-01","end":"2025-09-03"}`)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", res.StatusCode)
	}
	var created result
	decodeBody(t, res, &created)
	if created.ID != 4 {
		t.Fatalf("want id 4 after seed, got %d", created.ID)
	}

	// same room, overlapping stay
	res = do(t, http.MethodPost, ts.URL+"/v1/reservations",
		`{"client_id":2,"room_id":4,"start":"2025-09-02","end":"2025-09-04"}`)
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("want 409, got %d", res.StatusCode)
	}

	res = do(t, http.MethodPut, ts.URL+"/v1/reservations/4",
		`{"room_id":3,"start":"2025-09-10","end":"2025-09-12"}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update status %d", res.StatusCode)
	}

	res = do(t, http.MethodGet, ts.URL+"/v1/reservations", "")
	var list []domain.ReservationView
	decodeBody(t, res, &list)
	if len(list) != 4 || list[0].ID != 4 || list[0].RoomID != 3 || list[0].Start != "2025-09-10" {
		t.Fatalf("unexpected list head: %+v", list)
	}

	res = do(t, http.MethodDelete, ts.URL+"/v1/reservations/4", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status %d", res.StatusCode)
	}
	res = do(t, http.MethodDelete, ts.URL+"/v1/reservations/4", "")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 on second delete, got %d", res.StatusCode)
	}
}

func TestReservation_UnknownRoom(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodPost, ts.URL+"/v1/reservations",
		`{"client_id":1,"room_id":99,"start":"2025-09-01","end":"2025-09-03"}`)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", res.StatusCode)
	}
}

func TestClients(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodPost, ts.URL+"/v1/clients",
		`{"name":"Test User","address":"1 Main St","city":"Nice","postal_code":6000,"email":"test@example.com","phone":"0600000000"}`)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", res.StatusCode)
	}
	var created result
	decodeBody(t, res, &created)

	res = do(t, http.MethodPost, ts.URL+"/v1/clients",
		`{"name":"Other","address":"2 Main St","city":"Nice","postal_code":6000,"email":"test@example.com","phone":"0600000001"}`)
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate email: want 409, got %d", res.StatusCode)
	}

	res = do(t, http.MethodPost, ts.URL+"/v1/clients", `{"name":"No Address"}`)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing fields: want 400, got %d", res.StatusCode)
	}

	// client 3 holds the seeded reservations
	res = do(t, http.MethodDelete, ts.URL+"/v1/clients/3", "")
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("want 409, got %d", res.StatusCode)
	}
	var p problem
	decodeBody(t, res, &p)
	if p.Detail != "client has associated reservations" {
		t.Fatalf("detail %q", p.Detail)
	}

	res = do(t, http.MethodDelete, ts.URL+"/v1/clients/"+strconv.FormatInt(created.ID, 10), "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status %d", res.StatusCode)
	}

	res = do(t, http.MethodGet, ts.URL+"/v1/clients", "")
	var clients []domain.Client
	decodeBody(t, res, &clients)
	if len(clients) != 3 {
		t.Fatalf("want 3 clients, got %d", len(clients))
	}
}

func TestInvalidPathID(t *testing.T) {
	ts := newTestServer(t)

	res := do(t, http.MethodDelete, ts.URL+"/v1/clients/abc", "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", res.StatusCode)
	}
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first: %d", first.Code)
	}
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second: want 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
}

func TestTimeout_Overrun(t *testing.T) {
	h := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("want 504, got %d", rec.Code)
	}
}

func TestTimeout_Disabled(t *testing.T) {
	h := Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); ok {
			t.Errorf("unexpected deadline")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}
}
