package domain

// Schedule constants
const (
	SlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxClientNameLength = 120
	MaxPhoneLength      = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
