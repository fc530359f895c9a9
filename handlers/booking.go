package handlers

import (
	"fmt"
	"net/http"
	"regexp"

	"carcare/models"
	"carcare/services/booking"
	"carcare/utils"

	"github.com/gin-gonic/gin"
)

// objectIDPattern is checked before any store access; a malformed identifier
// never reaches the repository.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// BookingHandler handles the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	created, err := h.Service.Create(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": created,
		"message": "Booking submitted successfully! Check your email for confirmation.",
	})
}

// UpdateBookingStatusHandler handles PUT /api/bookings. The only supported
// transition is pending to confirmed; the target status defaults to
// confirmed when omitted.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		ID     string `json:"_id"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Booking ID is required"})
		return
	}
	if !objectIDPattern.MatchString(req.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid booking ID format"})
		return
	}
	if req.Status != "" && req.Status != models.BookingStatusConfirmed {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only the 'confirmed' status is supported"})
		return
	}

	result, err := h.Service.Accept(req.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var message string
	switch {
	case result.AlreadyConfirmed:
		message = "Booking already confirmed."
	case result.EmailSent:
		message = "Booking confirmed! Confirmation email sent to customer."
	default:
		message = fmt.Sprintf("Booking confirmed, but email failed: %s", result.EmailError)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"booking":    result.Booking,
		"emailSent":  result.EmailSent,
		"emailError": result.EmailError,
		"message":    message,
	})
}

// DeleteBookingHandler handles DELETE /api/bookings?id=.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Booking ID is required"})
		return
	}
	if !objectIDPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid booking ID format"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

// GroupedBookingsHandler handles GET /api/bookings/grouped, the staff review
// view: bookings bucketed by date, newest date first, each with its flattened
// service display list.
func (h *BookingHandler) GroupedBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	groups, dates := booking.GroupByDate(bookings)
	type entry struct {
		Booking  models.Booking `json:"booking"`
		Services []string       `json:"services"`
	}
	grouped := make([]gin.H, 0, len(dates))
	for _, date := range dates {
		entries := make([]entry, 0, len(groups[date]))
		for _, b := range groups[date] {
			entries = append(entries, entry{Booking: b, Services: booking.DisplayServices(b)})
		}
		grouped = append(grouped, gin.H{"date": date, "bookings": entries})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "groups": grouped})
}
