package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Twilio   TwilioConfig
	Voucher  VoucherConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	PublicBaseURL string
}

type DatabaseConfig struct {
	URL      string `validate:"required"`
	MaxConns int32
}

type TwilioConfig struct {
	AccountSID   string `validate:"required"`
	AuthToken    string `validate:"required"`
	WhatsAppFrom string `validate:"required"`
}

type VoucherConfig struct {
	Dir             string
	HotelName       string
	CurrencySymbol  string
	ChromePath      string
	ChromeNoSandbox bool
	RenderTimeout   int // seconds
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "hotel-booking")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("VOUCHER_DIR", "vouchers")
	viper.SetDefault("HOTEL_NAME", "Sampath Residency")
	viper.SetDefault("CURRENCY_SYMBOL", "₹")
	viper.SetDefault("RENDER_TIMEOUT_SECS", 30)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	// .env is optional, environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			PublicBaseURL: viper.GetString("PUBLIC_BASE_URL"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Twilio: TwilioConfig{
			AccountSID:   viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:    viper.GetString("TWILIO_AUTH_TOKEN"),
			WhatsAppFrom: viper.GetString("TWILIO_WHATSAPP_NUMBER"),
		},
		Voucher: VoucherConfig{
			Dir:             viper.GetString("VOUCHER_DIR"),
			HotelName:       viper.GetString("HOTEL_NAME"),
			CurrencySymbol:  viper.GetString("CURRENCY_SYMBOL"),
			ChromePath:      viper.GetString("CHROME_PATH"),
			ChromeNoSandbox: viper.GetBool("CHROME_NO_SANDBOX"),
			RenderTimeout:   viper.GetInt("RENDER_TIMEOUT_SECS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
	}

	if config.App.PublicBaseURL == "" {
		config.App.PublicBaseURL = fmt.Sprintf("http://localhost:%s", config.App.Port)
	}

	if errs := ValidateStruct(config.Database); len(errs) > 0 {
		return nil, fmt.Errorf("database config: %s", FormatValidationErrors(errs))
	}
	if errs := ValidateStruct(config.Twilio); len(errs) > 0 {
		return nil, fmt.Errorf("twilio config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
