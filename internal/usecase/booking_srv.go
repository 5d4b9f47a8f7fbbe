package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"
)

// VoucherRenderer produces the booking's PDF artifact on local storage.
type VoucherRenderer interface {
	Render(ctx context.Context, booking *entity.Booking) (string, error)
}

// VoucherDispatcher pushes the voucher link to the guest's phone number.
type VoucherDispatcher interface {
	Send(phoneNumber, documentURL string) (string, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo       *repository.Repository
	renderer   VoucherRenderer
	dispatcher VoucherDispatcher
	baseURL    string
	log        *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	renderer VoucherRenderer,
	dispatcher VoucherDispatcher,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:       repo,
		renderer:   renderer,
		dispatcher: dispatcher,
		baseURL:    config.App.PublicBaseURL,
		log:        log.With(zap.String("service", "booking")),
	}
}

// CreateBooking persists the submission, renders its voucher, and sends the
// voucher link to the guest. Persistence and render failures abort the
// request; a dispatch failure is logged only, the booking stands either way.
// No rollback: a render failure leaves the persisted record without a file.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CustomerName:  req.CustomerName,
		PhoneNumber:   req.PhoneNumber,
		RoomType:      req.RoomType,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to persist booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if _, err := s.renderer.Render(ctx, booking); err != nil {
		s.log.Error("Failed to render voucher",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("render voucher: %w", err)
	}

	voucherURL := fmt.Sprintf("%s/vouchers/%s", s.baseURL, booking.VoucherFilename())

	sid, err := s.dispatcher.Send(booking.PhoneNumber, voucherURL)
	dispatched := err == nil
	if err != nil {
		// Delivery is best-effort: the booking and voucher stand regardless.
		s.log.Warn("WhatsApp dispatch failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("voucher_url", voucherURL),
		zap.Bool("dispatched", dispatched),
		zap.String("message_sid", sid),
	)

	return response.BookingToResponse(booking, voucherURL, dispatched), nil
}
