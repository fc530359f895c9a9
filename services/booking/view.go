package booking

import (
	"sort"

	"carcare/models"
)

// GroupByDate buckets bookings by their booking date and returns the group
// map together with the dates sorted descending for display. The transform
// is pure; it never touches the store.
func GroupByDate(bookings []models.Booking) (map[string][]models.Booking, []string) {
	groups := make(map[string][]models.Booking)
	for _, b := range bookings {
		groups[b.BookingDate] = append(groups[b.BookingDate], b)
	}

	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return groups, dates
}

// DisplayServices flattens the primary service name and the additional
// service names into one ordered list, silently dropping blanks.
func DisplayServices(b models.Booking) []string {
	services := make([]string, 0, 1+len(b.AdditionalServices))
	if b.ServiceName != "" {
		services = append(services, b.ServiceName)
	}
	for _, ref := range b.AdditionalServices {
		if ref.Name != "" {
			services = append(services, ref.Name)
		}
	}
	return services
}
