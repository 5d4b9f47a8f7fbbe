package usecase

import (
	"go.uber.org/zap"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"
)

type Service struct {
	Booking BookingService
}

func NewService(
	repo *repository.Repository,
	renderer VoucherRenderer,
	dispatcher VoucherDispatcher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Booking: NewBookingService(repo, renderer, dispatcher, config, log),
	}
}
