package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"
)

type mockBookingRepo struct {
	created   []*entity.Booking
	createErr error
}

func (m *mockBookingRepo) EnsureSchema(ctx context.Context) error { return nil }

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, booking)
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range m.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

type mockRenderer struct {
	rendered []*entity.Booking
	err      error
}

func (m *mockRenderer) Render(ctx context.Context, booking *entity.Booking) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.rendered = append(m.rendered, booking)
	return "vouchers/" + booking.VoucherFilename(), nil
}

type mockDispatcher struct {
	phones []string
	urls   []string
	err    error
}

func (m *mockDispatcher) Send(phoneNumber, documentURL string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.phones = append(m.phones, phoneNumber)
	m.urls = append(m.urls, documentURL)
	return "SM123", nil
}

func newTestService(repo *mockBookingRepo, renderer *mockRenderer, dispatcher *mockDispatcher) BookingService {
	config := &utils.Config{}
	config.App.PublicBaseURL = "http://localhost:5000"
	repos := &repository.Repository{Booking: repo}
	return NewBookingService(repos, renderer, dispatcher, config, zap.NewNop())
}

func sampleRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CustomerName:  "A. Rao",
		PhoneNumber:   "+919876543210",
		RoomType:      "Deluxe",
		CheckInDate:   "2024-05-01",
		CheckOutDate:  "2024-05-03",
		AmountPaid:    4500,
		PaymentMethod: "UPI",
		TransactionID: "TXN123",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	renderer := &mockRenderer{}
	dispatcher := &mockDispatcher{}
	svc := newTestService(repo, renderer, dispatcher)

	resp, err := svc.CreateBooking(context.Background(), sampleRequest())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "A. Rao", created.CustomerName)
	assert.Equal(t, "Deluxe", created.RoomType)
	assert.Equal(t, 4500.0, created.AmountPaid)

	require.Len(t, renderer.rendered, 1)
	assert.Equal(t, created.ID, renderer.rendered[0].ID)

	require.Len(t, dispatcher.phones, 1)
	assert.Equal(t, "+919876543210", dispatcher.phones[0])
	assert.Equal(t, "http://localhost:5000/vouchers/"+created.ID.String()+".pdf", dispatcher.urls[0])

	assert.Equal(t, created.ID.String(), resp.ID)
	assert.True(t, resp.Dispatched)
	assert.Equal(t, dispatcher.urls[0], resp.VoucherURL)
}

func TestCreateBooking_DistinctIdentifiersPerSubmission(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo, &mockRenderer{}, &mockDispatcher{})

	first, err := svc.CreateBooking(context.Background(), sampleRequest())
	require.NoError(t, err)
	second, err := svc.CreateBooking(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, repo.created, 2)
}

func TestCreateBooking_PersistenceFailureAbortsBeforeRender(t *testing.T) {
	repo := &mockBookingRepo{createErr: errors.New("connection refused")}
	renderer := &mockRenderer{}
	dispatcher := &mockDispatcher{}
	svc := newTestService(repo, renderer, dispatcher)

	_, err := svc.CreateBooking(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, renderer.rendered)
	assert.Empty(t, dispatcher.phones)
}

func TestCreateBooking_RenderFailureLeavesRecordAndSkipsDispatch(t *testing.T) {
	repo := &mockBookingRepo{}
	renderer := &mockRenderer{err: errors.New("disk full")}
	dispatcher := &mockDispatcher{}
	svc := newTestService(repo, renderer, dispatcher)

	_, err := svc.CreateBooking(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// The record persists without a voucher; no dispatch was attempted.
	require.Len(t, repo.created, 1)
	assert.Empty(t, dispatcher.phones)
}

func TestCreateBooking_DispatchFailureStillSucceeds(t *testing.T) {
	repo := &mockBookingRepo{}
	dispatcher := &mockDispatcher{err: errors.New("invalid 'To' number")}
	svc := newTestService(repo, &mockRenderer{}, dispatcher)

	resp, err := svc.CreateBooking(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.False(t, resp.Dispatched)
	require.Len(t, repo.created, 1)
}
