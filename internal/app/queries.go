package app

import (
	"context"
	"fmt"
	"time"

	"hotel_manager/internal/domain"
)

type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ListReservations(ctx context.Context) ([]domain.ReservationView, error) {
	return s.repo.ListReservations(ctx)
}

func (s *QueryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *QueryService) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	return s.repo.ListRooms(ctx)
}

// FindAvailableRooms lists rooms free for [start, end).
func (s *QueryService) FindAvailableRooms(ctx context.Context, start, end string) ([]domain.RoomView, error) {
	st, err := parseStay(start, end)
	if err != nil {
		return nil, err
	}

	key, cacheable := s.key(ctx, "avail:%s:%s", st.Start, st.End)
	var out []domain.RoomView
	if cacheable {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	rooms, err := s.repo.FindAvailableRooms(ctx, st)
	if err != nil {
		return nil, err
	}
	// copy to avoid aliasing the repo's backing array
	out = append([]domain.RoomView(nil), rooms...)
	if cacheable {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) Stats(ctx context.Context) (domain.Stats, error) {
	key, cacheable := s.key(ctx, "stats")
	var st domain.Stats
	if cacheable {
		if ok, _ := s.cache.Get(ctx, key, &st); ok {
			return st, nil
		}
	}
	st, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	if cacheable {
		_ = s.cache.Set(ctx, key, st, int(s.cacheTTL.Seconds()))
	}
	return st, nil
}

// key prefixes a cache key with the current write generation. It reports
// false when caching is off or the generation cannot be read.
func (s *QueryService) key(ctx context.Context, format string, args ...any) (string, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return "", false
	}
	var gen int64
	if _, err := s.cache.Get(ctx, generationKey, &gen); err != nil {
		return "", false
	}
	return fmt.Sprintf("g%d:", gen) + fmt.Sprintf(format, args...), true
}
