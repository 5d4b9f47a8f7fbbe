package entity

// Booking is written once at submission and never mutated afterwards.
// Dates are stored as free text, exactly as submitted.
type Booking struct {
	BaseSimple
	CustomerName  string  `db:"customer_name"`
	PhoneNumber   string  `db:"phone_number"`
	RoomType      string  `db:"room_type"`
	CheckInDate   string  `db:"check_in_date"`
	CheckOutDate  string  `db:"check_out_date"`
	AmountPaid    float64 `db:"amount_paid"`
	PaymentMethod string  `db:"payment_method"`
	TransactionID string  `db:"transaction_id"`
}

// VoucherFilename is the fixed name of the booking's derived PDF artifact.
func (b *Booking) VoucherFilename() string {
	return b.ID.String() + ".pdf"
}
