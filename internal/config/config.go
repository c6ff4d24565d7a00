package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// StoreConfig holds the storefront identity shown to customers
// (WhatsApp links, receipts, the public store endpoint).
type StoreConfig struct {
	Name            string
	Address         string
	Reference       string
	WhatsApp        string // international format, digits only
	WhatsAppDisplay string
	Instagram       string
	Hours           string
}

type StorageConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "floricultura-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORE_NAME", "IZAplantas - Floricultura")
	viper.SetDefault("STORE_ADDRESS", "Av. das Flores, 123 - Centro")
	viper.SetDefault("STORE_REFERENCE", "Próximo à praça central")
	viper.SetDefault("STORE_WHATSAPP", "5573999535407")
	viper.SetDefault("STORE_WHATSAPP_DISPLAY", "(73) 99953-5407")
	viper.SetDefault("STORE_INSTAGRAM", "@izaplantas")
	viper.SetDefault("STORE_HOURS", "Seg a Sáb, 8h às 18h")
	viper.SetDefault("STORAGE_PATH", "./data")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Store: StoreConfig{
			Name:            viper.GetString("STORE_NAME"),
			Address:         viper.GetString("STORE_ADDRESS"),
			Reference:       viper.GetString("STORE_REFERENCE"),
			WhatsApp:        viper.GetString("STORE_WHATSAPP"),
			WhatsAppDisplay: viper.GetString("STORE_WHATSAPP_DISPLAY"),
			Instagram:       viper.GetString("STORE_INSTAGRAM"),
			Hours:           viper.GetString("STORE_HOURS"),
		},
		Storage: StorageConfig{
			Path: viper.GetString("STORAGE_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
	}
}
