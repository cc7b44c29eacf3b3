package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"hotel_manager/internal/domain"
)

// CreateReservation inserts the reservation row and its room link in one
// transaction, after checking the client and room exist and the room is free
// for the stay.
func (s *Store) CreateReservation(ctx context.Context, r domain.NewReservation) (id int64, err error) {
	defer func(start time.Time) { s.observe("create_reservation", start, err) }(time.Now())

	id, err = runInTx(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		if err := mustExist(ctx, tx, clientExistsSQL, "client", r.ClientID); err != nil {
			return 0, err
		}
		if err := mustExist(ctx, tx, roomExistsSQL, "room", r.RoomID); err != nil {
			return 0, err
		}
		if err := roomFree(ctx, tx, r.RoomID, domain.Stay{Start: r.Start, End: r.End}, 0); err != nil {
			return 0, err
		}

		res, err := tx.ExecContext(ctx, insertReservationSQL, r.Start, r.End, r.ClientID)
		if err != nil {
			return 0, err
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, insertReservationRoomSQL, newID, r.RoomID); err != nil {
			return 0, err
		}
		return newID, nil
	})
	return id, s.classify(err, "create reservation")
}

// UpdateReservation rewrites the dates and the room link of one reservation,
// creating the link when none exists.
// With recheck set the new room must be free of every other reservation.
func (s *Store) UpdateReservation(ctx context.Context, ch domain.ReservationChange, recheck bool) (err error) {
	defer func(start time.Time) { s.observe("update_reservation", start, err) }(time.Now())

	_, err = runInTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if err := mustExist(ctx, tx, reservationExistsSQL, "reservation", ch.ID); err != nil {
			return struct{}{}, err
		}
		if err := mustExist(ctx, tx, roomExistsSQL, "room", ch.RoomID); err != nil {
			return struct{}{}, err
		}
		if recheck {
			if err := roomFree(ctx, tx, ch.RoomID, domain.Stay{Start: ch.Start, End: ch.End}, ch.ID); err != nil {
				return struct{}{}, err
			}
		}
		if _, err := tx.ExecContext(ctx, updateReservationDatesSQL, ch.Start, ch.End, ch.ID); err != nil {
			return struct{}{}, err
		}
		// a reservation that lost its link gets one again
		links, err := count(ctx, tx, countReservationLinksSQL, ch.ID)
		if err != nil {
			return struct{}{}, err
		}
		if links == 0 {
			_, err = tx.ExecContext(ctx, insertReservationRoomSQL, ch.ID, ch.RoomID)
		} else {
			_, err = tx.ExecContext(ctx, updateReservationRoomSQL, ch.RoomID, ch.ID)
		}
		return struct{}{}, err
	})
	return s.classify(err, "update reservation")
}

// DeleteReservation removes the room links, then the reservation row.
func (s *Store) DeleteReservation(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { s.observe("delete_reservation", start, err) }(time.Now())

	_, err = runInTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx, deleteReservationRoomsSQL, id); err != nil {
			return struct{}{}, err
		}
		res, err := tx.ExecContext(ctx, deleteReservationSQL, id)
		if err != nil {
			return struct{}{}, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return struct{}{}, err
		}
		if n == 0 {
			return struct{}{}, domain.Missing("reservation", id)
		}
		return struct{}{}, nil
	})
	return s.classify(err, "delete reservation")
}

func (s *Store) ListReservations(ctx context.Context) (out []domain.ReservationView, err error) {
	defer func(start time.Time) { s.observe("list_reservations", start, err) }(time.Now())

	rows, err := s.db.QueryContext(ctx, listReservationsSQL)
	if err != nil {
		return nil, s.classify(err, "list reservations")
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.ReservationView
		var number sql.NullInt64
		if err := rows.Scan(&v.ID, &v.Start, &v.End, &v.ClientID, &v.ClientName, &v.RoomID, &number, &v.HotelCity); err != nil {
			return nil, s.classify(err, "scan reservation")
		}
		v.RoomNumber = int(number.Int64)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(err, "list reservations")
	}
	return out, nil
}

func mustExist(ctx context.Context, q queryer, query, entity string, id int64) error {
	ok, err := exists(ctx, q, query, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Missing(entity, id)
	}
	return nil
}

// roomFree fails with ErrRoomUnavailable when another reservation on roomID
// overlaps st.
func roomFree(ctx context.Context, q queryer, roomID int64, st domain.Stay, ignore int64) error {
	n, err := count(ctx, q, countRoomConflictsSQL, roomID, st.End, st.Start, ignore)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrRoomUnavailable
	}
	return nil
}
