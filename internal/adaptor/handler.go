package adaptor

import (
	"go.uber.org/zap"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type Handler struct {
	Booking *BookingHandler
	Voucher *VoucherHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Voucher: NewVoucherHandler(config.Voucher.Dir, log),
	}
}
