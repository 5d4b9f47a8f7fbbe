package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"
)

type mockBookingService struct {
	req  *request.CreateBookingRequest
	resp *response.BookingResponse
	err  error
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	m.req = req
	return m.resp, m.err
}

func TestCreateBooking_Success(t *testing.T) {
	svc := &mockBookingService{resp: &response.BookingResponse{ID: "b-1", Dispatched: true}}
	h := NewBookingHandler(svc, zap.NewNop())

	body := `{"customerName":"A. Rao","phoneNumber":"+919876543210","roomType":"Deluxe","checkInDate":"2024-05-01","checkOutDate":"2024-05-03","amountPaid":4500,"paymentMethod":"UPI","transactionId":"TXN123"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Status)
	assert.Contains(t, resp.Message, "Booking confirmed")

	require.NotNil(t, svc.req)
	assert.Equal(t, "A. Rao", svc.req.CustomerName)
	assert.Equal(t, 4500.0, svc.req.AmountPaid)
}

func TestCreateBooking_MissingFieldsStillReachService(t *testing.T) {
	// No submission validation: an empty object flows through as zero values.
	svc := &mockBookingService{resp: &response.BookingResponse{ID: "b-2"}}
	h := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	assert.Empty(t, svc.req.PhoneNumber)
}

func TestCreateBooking_PipelineFailureReturns500(t *testing.T) {
	svc := &mockBookingService{err: errors.New("render voucher: disk full")}
	h := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "disk full")
}

func TestCreateBooking_MalformedBodyReturns400(t *testing.T) {
	svc := &mockBookingService{}
	h := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.req)
}
