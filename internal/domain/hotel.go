package domain

// DateLayout is the ISO form every reservation date is stored and exchanged in.
const DateLayout = "2006-01-02"

type Hotel struct {
	ID         int64  `json:"id"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode int    `json:"postal_code"`
}

type RoomType struct {
	ID        int64   `json:"id"`
	Label     string  `json:"label"`
	BasePrice float64 `json:"base_price"`
}

type Room struct {
	ID      int64 `json:"id"`
	Number  int   `json:"number"`
	Floor   int   `json:"floor"`
	SeaView bool  `json:"sea_view"`
	HotelID int64 `json:"hotel_id"`
	TypeID  int64 `json:"type_id"`
}

type Client struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode int    `json:"postal_code"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Reservation dates are ISO strings (DateLayout); End is strictly after Start.
type Reservation struct {
	ID       int64  `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	ClientID int64  `json:"client_id"`
}

// ReservationRoom links one reservation to one room.
type ReservationRoom struct {
	ReservationID int64 `json:"reservation_id"`
	RoomID        int64 `json:"room_id"`
}
