package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /bookings.
// Submitted fields are accepted as-is; only an undecodable body is rejected
// up front. Any failure in the persist/render pipeline surfaces as a single
// generic 500 carrying the underlying message.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create booking", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
		return
	}

	utils.ResponseSuccess(w, "Booking confirmed! Voucher sent via WhatsApp.", booking)
}
