package domain

// Client is the minimal client record an appointment needs: created on
// booking, referenced by appointments. Owned by the client service.
type Client struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Points int     `json:"points"`
}

// Barber is the minimal barber record needed to key and render an
// appointment. Owned by the catalog service.
type Barber struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties,omitempty"`
	Available   bool     `json:"available"`
}

// Service is the minimal service record: its price is the source of the
// revenue snapshot. Owned by the catalog service.
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}
