package domain

import "context"

type HotelRepository interface {
	// Lifecycle
	Initialize(ctx context.Context) (bool, error)

	// Write paths
	CreateClient(ctx context.Context, c NewClient) (int64, error)
	DeleteClient(ctx context.Context, id int64) error
	CreateReservation(ctx context.Context, r NewReservation) (int64, error)
	UpdateReservation(ctx context.Context, ch ReservationChange, recheck bool) error
	DeleteReservation(ctx context.Context, id int64) error

	// Read paths
	ListReservations(ctx context.Context) ([]ReservationView, error)
	ListClients(ctx context.Context) ([]Client, error)
	ListRooms(ctx context.Context) ([]RoomView, error)
	FindAvailableRooms(ctx context.Context, s Stay) ([]RoomView, error)
	Stats(ctx context.Context) (Stats, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}
