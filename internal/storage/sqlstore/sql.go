package sqlstore

// Placeholders are `?` for every supported driver.

// -----------------------------------------------------------------------------
// CLIENTS
// -----------------------------------------------------------------------------

const countClientEmailSQL = `SELECT COUNT(*) FROM client WHERE email = ?`

const insertClientSQL = `
INSERT INTO client
  (name, address, city, postal_code, email, phone)
VALUES
  (?, ?, ?, ?, ?, ?)
`

const clientExistsSQL = `SELECT COUNT(*) FROM client WHERE id = ?`

const countClientReservationsSQL = `SELECT COUNT(*) FROM reservation WHERE client_id = ?`

const deleteClientSQL = `DELETE FROM client WHERE id = ?`

const listClientsSQL = `
SELECT id, name, address, city, postal_code, email, phone
FROM client
ORDER BY name, id
`

// -----------------------------------------------------------------------------
// RESERVATIONS
// -----------------------------------------------------------------------------

const reservationExistsSQL = `SELECT COUNT(*) FROM reservation WHERE id = ?`

const roomExistsSQL = `SELECT COUNT(*) FROM room WHERE id = ?`

// Counts reservations on one room overlapping [start, end] under
// existing.start <= end AND existing.end >= start, ignoring reservation id
// (0 ignores nothing).
const countRoomConflictsSQL = `
SELECT COUNT(*)
FROM reservation_room rr
JOIN reservation r ON rr.reservation_id = r.id
WHERE rr.room_id = ?
  AND r.start_date <= ?
  AND r.end_date >= ?
  AND r.id <> ?
`

const insertReservationSQL = `
INSERT INTO reservation
  (start_date, end_date, client_id)
VALUES
  (?, ?, ?)
`

const insertReservationRoomSQL = `
INSERT INTO reservation_room
  (reservation_id, room_id)
VALUES
  (?, ?)
`

const updateReservationDatesSQL = `UPDATE reservation SET start_date = ?, end_date = ? WHERE id = ?`

const countReservationLinksSQL = `SELECT COUNT(*) FROM reservation_room WHERE reservation_id = ?`

const updateReservationRoomSQL = `UPDATE reservation_room SET room_id = ? WHERE reservation_id = ?`

const deleteReservationRoomsSQL = `DELETE FROM reservation_room WHERE reservation_id = ?`

const deleteReservationSQL = `DELETE FROM reservation WHERE id = ?`

const listReservationsSQL = `
SELECT
  r.id,
  r.start_date,
  r.end_date,
  c.id,
  c.name,
  rm.id,
  rm.number,
  h.city
FROM reservation r
JOIN client c            ON r.client_id = c.id
JOIN reservation_room rr ON r.id = rr.reservation_id
JOIN room rm             ON rr.room_id = rm.id
JOIN hotel h             ON rm.hotel_id = h.id
ORDER BY r.start_date DESC, r.id
`

// -----------------------------------------------------------------------------
// ROOMS
// -----------------------------------------------------------------------------

const roomViewColumns = `
SELECT
  rm.id,
  rm.number,
  rm.floor,
  rm.sea_view,
  h.id,
  h.city,
  t.id,
  t.label,
  t.base_price
FROM room rm
JOIN hotel h     ON rm.hotel_id = h.id
JOIN room_type t ON rm.type_id = t.id
`

const listRoomsSQL = roomViewColumns + `ORDER BY rm.id`

// Args: query end, query start. The comparison is inclusive on both ends, so
// a stay starting on another stay's last day conflicts with it.
const availableRoomsSQL = roomViewColumns + `
WHERE rm.id NOT IN (
  SELECT rr.room_id
  FROM reservation_room rr
  JOIN reservation r ON rr.reservation_id = r.id
  WHERE r.start_date <= ? AND r.end_date >= ?
)
ORDER BY rm.id`

// -----------------------------------------------------------------------------
// DASHBOARD
// -----------------------------------------------------------------------------

const statsSQL = `
SELECT
  (SELECT COUNT(*) FROM reservation),
  (SELECT COUNT(*) FROM client),
  (SELECT COUNT(*) FROM room)
`
