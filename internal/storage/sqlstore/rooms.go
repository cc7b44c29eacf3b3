package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"hotel_manager/internal/domain"
)

func (s *Store) ListRooms(ctx context.Context) (out []domain.RoomView, err error) {
	defer func(start time.Time) { s.observe("list_rooms", start, err) }(time.Now())
	out, err = s.queryRooms(ctx, listRoomsSQL)
	return out, s.classify(err, "list rooms")
}

// FindAvailableRooms returns every room with no reservation overlapping st.
func (s *Store) FindAvailableRooms(ctx context.Context, st domain.Stay) (out []domain.RoomView, err error) {
	defer func(start time.Time) { s.observe("find_available_rooms", start, err) }(time.Now())
	out, err = s.queryRooms(ctx, availableRoomsSQL, st.End, st.Start)
	return out, s.classify(err, "find available rooms")
}

func (s *Store) Stats(ctx context.Context) (st domain.Stats, err error) {
	defer func(start time.Time) { s.observe("stats", start, err) }(time.Now())
	err = s.db.QueryRowContext(ctx, statsSQL).Scan(&st.Reservations, &st.Clients, &st.Rooms)
	return st, s.classify(err, "stats")
}

func (s *Store) queryRooms(ctx context.Context, query string, args ...any) ([]domain.RoomView, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomView
	for rows.Next() {
		var v domain.RoomView
		var number, floor sql.NullInt64
		var price sql.NullFloat64
		if err := rows.Scan(&v.ID, &number, &floor, &v.SeaView, &v.HotelID, &v.HotelCity, &v.TypeID, &v.TypeLabel, &price); err != nil {
			return nil, err
		}
		v.Number = int(number.Int64)
		v.Floor = int(floor.Int64)
		v.BasePrice = price.Float64
		out = append(out, v)
	}
	return out, rows.Err()
}
