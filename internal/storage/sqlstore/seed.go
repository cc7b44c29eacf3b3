package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"hotel_manager/internal/domain"
)

// Seed rows inserted on first initialization. Ids are explicit so links
// between tables stay stable.
var (
	seedHotels = []domain.Hotel{
		{ID: 1, City: "Paris", Country: "France", PostalCode: 75001},
		{ID: 2, City: "Lyon", Country: "France", PostalCode: 69002},
	}
	seedRoomTypes = []domain.RoomType{
		{ID: 1, Label: "Simple", BasePrice: 80},
		{ID: 2, Label: "Double", BasePrice: 120},
	}
	seedClients = []domain.Client{
		{ID: 1, Name: "Jean Dupont", Address: "12 Rue de Paris", City: "Paris", PostalCode: 75001, Email: "jean@email.fr", Phone: "0612345678"},
		{ID: 2, Name: "Marie Leroy", Address: "5 Avenue Victor Hugo", City: "Lyon", PostalCode: 69002, Email: "marie@email.fr", Phone: "0623456789"},
		{ID: 3, Name: "mohamed", Address: "8 Boulevard Saint-Michel", City: "Marseille", PostalCode: 13005, Email: "mohamed@email.fr", Phone: "0634567890"},
	}
	seedRooms = []domain.Room{
		{ID: 1, Number: 201, Floor: 2, SeaView: false, HotelID: 1, TypeID: 1},
		{ID: 2, Number: 502, Floor: 5, SeaView: true, HotelID: 1, TypeID: 2},
		{ID: 3, Number: 305, Floor: 3, SeaView: false, HotelID: 2, TypeID: 1},
		{ID: 4, Number: 410, Floor: 4, SeaView: false, HotelID: 2, TypeID: 2},
	}
	seedReservations = []domain.Reservation{
		{ID: 1, Start: "2025-05-27", End: "2025-05-28", ClientID: 3},
		{ID: 2, Start: "2025-07-01", End: "2025-07-05", ClientID: 2},
		{ID: 3, Start: "2025-05-27", End: "2025-05-28", ClientID: 3},
	}
	seedReservationRooms = []domain.ReservationRoom{
		{ReservationID: 1, RoomID: 1},
		{ReservationID: 2, RoomID: 2},
		{ReservationID: 3, RoomID: 1},
	}
)

type seedTable struct {
	table   string
	columns string
	rows    [][]any
}

// rowsOf flattens seed entities into insert arguments.
func rowsOf[T any](items []T, args func(T) []any) [][]any {
	out := make([][]any, 0, len(items))
	for _, it := range items {
		out = append(out, args(it))
	}
	return out
}

func seedTables() []seedTable {
	return []seedTable{
		{"hotel", "id, city, country, postal_code", rowsOf(seedHotels, func(h domain.Hotel) []any {
			return []any{h.ID, h.City, h.Country, h.PostalCode}
		})},
		{"room_type", "id, label, base_price", rowsOf(seedRoomTypes, func(t domain.RoomType) []any {
			return []any{t.ID, t.Label, t.BasePrice}
		})},
		{"client", "id, name, address, city, postal_code, email, phone", rowsOf(seedClients, func(c domain.Client) []any {
			return []any{c.ID, c.Name, c.Address, c.City, c.PostalCode, c.Email, c.Phone}
		})},
		{"room", "id, number, floor, sea_view, hotel_id, type_id", rowsOf(seedRooms, func(r domain.Room) []any {
			return []any{r.ID, r.Number, r.Floor, r.SeaView, r.HotelID, r.TypeID}
		})},
		{"reservation", "id, start_date, end_date, client_id", rowsOf(seedReservations, func(r domain.Reservation) []any {
			return []any{r.ID, r.Start, r.End, r.ClientID}
		})},
		{"reservation_room", "reservation_id, room_id", rowsOf(seedReservationRooms, func(l domain.ReservationRoom) []any {
			return []any{l.ReservationID, l.RoomID}
		})},
	}
}

// Initialize creates and seeds the schema when the database holds no table
// at all. It reports whether it did anything; an existing schema is left as is.
func (s *Store) Initialize(ctx context.Context) (created bool, err error) {
	defer func(start time.Time) { s.observe("initialize", start, err) }(time.Now())

	n, err := count(ctx, s.db, s.d.CountTablesSQL())
	if err != nil {
		return false, s.classify(err, "inspect schema")
	}
	if n > 0 {
		log.Debug().Int("tables", n).Msg("store already initialized")
		return false, nil
	}

	log.Info().Str("driver", s.d.Name()).Msg("creating database")
	_, err = runInTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if err := createSchema(ctx, tx, s.d); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, insertSeed(ctx, tx, s.d)
	})
	if err != nil {
		return false, s.classify(err, "initialize store")
	}
	log.Info().Msg("database created")
	return true, nil
}

// CreateSchema creates the tables without seed rows.
func (s *Store) CreateSchema(ctx context.Context) (err error) {
	defer func(start time.Time) { s.observe("create_schema", start, err) }(time.Now())
	return s.classify(createSchema(ctx, s.db, s.d), "create schema")
}

func createSchema(ctx context.Context, q queryer, d Dialect) error {
	for _, ddl := range d.Schema() {
		if _, err := q.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

// insertSeed skips rows that already exist.
func insertSeed(ctx context.Context, q queryer, d Dialect) error {
	for _, t := range seedTables() {
		for _, row := range t.rows {
			query := fmt.Sprintf("%s INTO %s (%s) VALUES (%s)", d.InsertIgnore(), t.table, t.columns, placeholders(len(row)))
			if _, err := q.ExecContext(ctx, query, row...); err != nil {
				return errors.Wrapf(err, "seed %s", t.table)
			}
		}
	}
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = append(out, '?')
	}
	return string(out)
}
