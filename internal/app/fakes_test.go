package app_test

import (
	"context"
	"encoding/json"
	"errors"

	"hotel_manager/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	calls map[string]int

	createdClient      domain.NewClient
	createdReservation domain.NewReservation
	updated            domain.ReservationChange
	updatedRecheck     bool
	deletedID          int64

	err         error
	rooms       []domain.RoomView
	stats       domain.Stats
	initCreated bool
}

func (f *fakeRepo) hit(name string) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeRepo) Initialize(ctx context.Context) (bool, error) {
	f.hit("Initialize")
	return f.initCreated, f.err
}
func (f *fakeRepo) CreateClient(ctx context.Context, c domain.NewClient) (int64, error) {
	f.hit("CreateClient")
	f.createdClient = c
	if f.err != nil {
		return 0, f.err
	}
	return 4, nil
}
func (f *fakeRepo) DeleteClient(ctx context.Context, id int64) error {
	f.hit("DeleteClient")
	f.deletedID = id
	return f.err
}
func (f *fakeRepo) CreateReservation(ctx context.Context, r domain.NewReservation) (int64, error) {
	f.hit("CreateReservation")
	f.createdReservation = r
	if f.err != nil {
		return 0, f.err
	}
	return 9, nil
}
func (f *fakeRepo) UpdateReservation(ctx context.Context, ch domain.ReservationChange, recheck bool) error {
	f.hit("UpdateReservation")
	f.updated = ch
	f.updatedRecheck = recheck
	return f.err
}
func (f *fakeRepo) DeleteReservation(ctx context.Context, id int64) error {
	f.hit("DeleteReservation")
	f.deletedID = id
	return f.err
}
func (f *fakeRepo) ListReservations(ctx context.Context) ([]domain.ReservationView, error) {
	f.hit("ListReservations")
	return nil, f.err
}
func (f *fakeRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	f.hit("ListClients")
	return nil, f.err
}
func (f *fakeRepo) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	f.hit("ListRooms")
	return f.rooms, f.err
}
func (f *fakeRepo) FindAvailableRooms(ctx context.Context, s domain.Stay) ([]domain.RoomView, error) {
	f.hit("FindAvailableRooms")
	return f.rooms, f.err
}
func (f *fakeRepo) Stats(ctx context.Context) (domain.Stats, error) {
	f.hit("Stats")
	return f.stats, f.err
}

// fakeCache stores JSON like the redis adapter does, so Get decodes into any dst.
type fakeCache struct {
	store   map[string][]byte
	getErr  error
	incrErr error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(v, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}
func (c *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	if c.incrErr != nil {
		return 0, c.incrErr
	}
	var n int64
	if b, ok := c.store[key]; ok {
		if err := json.Unmarshal(b, &n); err != nil {
			return 0, errors.New("value is not an integer")
		}
	}
	n++
	_ = c.Set(ctx, key, n, 0)
	return n, nil
}

func (c *fakeCache) generation() int64 {
	var n int64
	if b, ok := c.store["hotel:gen"]; ok {
		_ = json.Unmarshal(b, &n)
	}
	return n
}
