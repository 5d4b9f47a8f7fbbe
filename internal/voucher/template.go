package voucher

import (
	"bytes"
	"html/template"
	"strconv"

	"hotel-booking/internal/data/entity"
)

// Single-page fixed layout: centered title, then one labeled line per field.
const voucherTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12pt; color: #000; }
  h1 { font-size: 16pt; text-align: center; margin-bottom: 24px; }
  p { margin: 6px 0; }
</style>
</head>
<body>
  <h1>{{.HotelName}} - Payment Confirmation</h1>
  <p>Guest Name: {{.CustomerName}}</p>
  <p>Room Type: {{.RoomType}}</p>
  <p>Check-in: {{.CheckInDate}}</p>
  <p>Check-out: {{.CheckOutDate}}</p>
  <p>Amount Paid: {{.Currency}}{{.AmountPaid}}</p>
  <p>Payment Method: {{.PaymentMethod}}</p>
  <p>Transaction ID: {{.TransactionID}}</p>
</body>
</html>
`

type voucherData struct {
	HotelName     string
	CustomerName  string
	RoomType      string
	CheckInDate   string
	CheckOutDate  string
	Currency      string
	AmountPaid    string
	PaymentMethod string
	TransactionID string
}

func (r *Renderer) voucherHTML(b *entity.Booking) (string, error) {
	data := voucherData{
		HotelName:     r.config.HotelName,
		CustomerName:  b.CustomerName,
		RoomType:      b.RoomType,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		Currency:      r.config.CurrencySymbol,
		AmountPaid:    strconv.FormatFloat(b.AmountPaid, 'f', -1, 64),
		PaymentMethod: b.PaymentMethod,
		TransactionID: b.TransactionID,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func parseVoucherTemplate() *template.Template {
	return template.Must(template.New("voucher").Parse(voucherTemplate))
}
