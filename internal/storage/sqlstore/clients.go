package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"hotel_manager/internal/domain"
)

// CreateClient inserts c and returns its id. Email uniqueness is checked in
// the same transaction as the insert.
func (s *Store) CreateClient(ctx context.Context, c domain.NewClient) (id int64, err error) {
	defer func(start time.Time) { s.observe("create_client", start, err) }(time.Now())

	id, err = runInTx(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		n, err := count(ctx, tx, countClientEmailSQL, c.Email)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return 0, domain.ErrDuplicateEmail
		}
		res, err := tx.ExecContext(ctx, insertClientSQL, c.Name, c.Address, c.City, c.PostalCode, c.Email, c.Phone)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
	return id, s.classify(err, "create client")
}

// DeleteClient removes a client that no reservation references.
func (s *Store) DeleteClient(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { s.observe("delete_client", start, err) }(time.Now())

	_, err = runInTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		ok, err := exists(ctx, tx, clientExistsSQL, id)
		if err != nil {
			return struct{}{}, err
		}
		if !ok {
			return struct{}{}, domain.Missing("client", id)
		}
		n, err := count(ctx, tx, countClientReservationsSQL, id)
		if err != nil {
			return struct{}{}, err
		}
		if n > 0 {
			return struct{}{}, domain.ErrClientHasReservations
		}
		_, err = tx.ExecContext(ctx, deleteClientSQL, id)
		return struct{}{}, err
	})
	return s.classify(err, "delete client")
}

func (s *Store) ListClients(ctx context.Context) (out []domain.Client, err error) {
	defer func(start time.Time) { s.observe("list_clients", start, err) }(time.Now())

	rows, err := s.db.QueryContext(ctx, listClientsSQL)
	if err != nil {
		return nil, s.classify(err, "list clients")
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Client
		var address, city, email, phone sql.NullString
		var postal sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &address, &city, &postal, &email, &phone); err != nil {
			return nil, s.classify(err, "scan client")
		}
		c.Address = address.String
		c.City = city.String
		c.PostalCode = int(postal.Int64)
		c.Email = email.String
		c.Phone = phone.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(err, "list clients")
	}
	return out, nil
}
