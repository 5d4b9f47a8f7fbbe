package notify

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

const channelPrefix = "whatsapp:"

// MessageCreator is the slice of the Twilio REST API the dispatcher needs.
// Satisfied by twilio.RestClient.Api.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Dispatcher sends voucher links to guests over WhatsApp.
type Dispatcher struct {
	api       MessageCreator
	from      string
	hotelName string
	log       *zap.Logger
}

func NewDispatcher(config utils.TwilioConfig, hotelName string, log *zap.Logger) *Dispatcher {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSID,
		Password: config.AuthToken,
	})

	return &Dispatcher{
		api:       client.Api,
		from:      ensureChannelPrefix(config.WhatsAppFrom),
		hotelName: hotelName,
		log:       log.With(zap.String("component", "whatsapp_dispatcher")),
	}
}

// NewDispatcherWithAPI wires a custom gateway client, used by tests.
func NewDispatcherWithAPI(api MessageCreator, from, hotelName string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		api:       api,
		from:      ensureChannelPrefix(from),
		hotelName: hotelName,
		log:       log.With(zap.String("component", "whatsapp_dispatcher")),
	}
}

// Send issues one message with the voucher URL attached as media and
// returns the gateway message SID. Errors are the caller's policy call;
// Send itself never retries.
func (d *Dispatcher) Send(phoneNumber, documentURL string) (string, error) {
	to := channelPrefix + stripWhitespace(phoneNumber)

	params := &openapi.CreateMessageParams{}
	params.SetFrom(d.from)
	params.SetTo(to)
	params.SetBody(fmt.Sprintf("Your payment confirmation voucher from %s.", d.hotelName))
	params.SetMediaUrl([]string{documentURL})

	msg, err := d.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("send whatsapp message to %s: %w", to, err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}

	d.log.Info("WhatsApp message sent",
		zap.String("to", to),
		zap.String("sid", sid),
	)

	return sid, nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func ensureChannelPrefix(number string) string {
	if strings.HasPrefix(number, channelPrefix) {
		return number
	}
	return channelPrefix + number
}
