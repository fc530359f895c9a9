package handlers

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Booking  *BookingHandler
	Media    *MediaHandler
	Catalogs []*CatalogHandler
}
