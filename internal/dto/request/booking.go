package request

// CreateBookingRequest mirrors the public form contract. Fields are stored
// as submitted; absent fields persist as zero values.
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	PhoneNumber   string  `json:"phoneNumber"`
	RoomType      string  `json:"roomType"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	AmountPaid    float64 `json:"amountPaid"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}
