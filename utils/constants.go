package utils

// TimeSlots is the fixed set of hourly booking labels offered to customers.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
}

// IsValidTimeSlot reports whether label is one of the offered booking slots.
func IsValidTimeSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// DefaultCountryCode is used when a booking request carries no phone prefix.
const DefaultCountryCode = "+91"
