package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-booking/internal/adaptor"
)

func wireBooking(r chi.Router, handler *adaptor.Handler) {
	// POST /bookings - Submit a booking; renders and dispatches its voucher
	r.Post("/bookings", handler.Booking.CreateBooking)

	// GET /vouchers/{filename} - Retrieve a previously rendered voucher PDF
	r.Get("/vouchers/{filename}", handler.Voucher.Serve)
}
