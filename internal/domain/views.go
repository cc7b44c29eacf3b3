package domain

// Read models & write inputs

// ReservationView is one reservation/room pair with the names an operator reads.
type ReservationView struct {
	ID         int64  `json:"id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name"`
	RoomID     int64  `json:"room_id"`
	RoomNumber int    `json:"room_number"`
	HotelCity  string `json:"hotel_city"`
}

// RoomView is a room with its hotel and type resolved.
type RoomView struct {
	ID        int64   `json:"id"`
	Number    int     `json:"number"`
	Floor     int     `json:"floor"`
	SeaView   bool    `json:"sea_view"`
	HotelID   int64   `json:"hotel_id"`
	HotelCity string  `json:"hotel_city"`
	TypeID    int64   `json:"type_id"`
	TypeLabel string  `json:"type_label"`
	BasePrice float64 `json:"base_price"`
}

type Stats struct {
	Reservations int `json:"reservations"`
	Clients      int `json:"clients"`
	Rooms        int `json:"rooms"`
}

type NewClient struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode int    `json:"postal_code"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type NewReservation struct {
	ClientID int64  `json:"client_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	RoomID   int64  `json:"room_id"`
}

// ReservationChange carries the whole edit for one reservation.
type ReservationChange struct {
	ID     int64  `json:"id"`
	Start  string `json:"start"`
	End    string `json:"end"`
	RoomID int64  `json:"room_id"`
}

// Stay is a requested [Start, End) interval, both ISO dates.
type Stay struct {
	Start string
	End   string
}
