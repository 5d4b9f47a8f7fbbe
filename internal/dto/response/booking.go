package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	PhoneNumber   string    `json:"phone_number"`
	RoomType      string    `json:"room_type"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	VoucherURL    string    `json:"voucher_url"`
	Dispatched    bool      `json:"whatsapp_dispatched"`
	CreatedAt     time.Time `json:"created_at"`
}

// Helper converter
func BookingToResponse(b *entity.Booking, voucherURL string, dispatched bool) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID.String(),
		CustomerName:  b.CustomerName,
		PhoneNumber:   b.PhoneNumber,
		RoomType:      b.RoomType,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		AmountPaid:    b.AmountPaid,
		PaymentMethod: b.PaymentMethod,
		TransactionID: b.TransactionID,
		VoucherURL:    voucherURL,
		Dispatched:    dispatched,
		CreatedAt:     b.CreatedAt,
	}
}
