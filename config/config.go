// package config defines the service's configuration including the defaults
package config

import (
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config with subsections per collaborator
type Config struct {
	Application struct {
		Name        string        `envconfig:"APP_NAME" default:"moto-coach-api"`
		Environment string        `envconfig:"APP_ENV" default:"production"`
		Port        int           `envconfig:"PORT" default:"8080"`
		Debug       bool          `envconfig:"APP_DEBUG" default:"false"`
		Timeout     time.Duration `envconfig:"APP_TIMEOUT" default:"10s"`
	}
	Stripe struct {
		BaseURL        string `envconfig:"STRIPE_BASE_URL" default:"https://api.stripe.com"`
		SecretKey      string `envconfig:"STRIPE_SECRET_KEY"`
		PublishableKey string `envconfig:"STRIPE_PUBLISHABLE_KEY"`
	}
	GoogleCalendar struct {
		BaseURL    string `envconfig:"GOOGLE_CALENDAR_BASE_URL" default:"https://www.googleapis.com/calendar/v3"`
		APIKey     string `envconfig:"GOOGLE_CALENDAR_API_KEY"`
		CalendarID string `envconfig:"GOOGLE_CALENDAR_ID"`
	}
	GoogleSheets struct {
		BaseURL       string `envconfig:"GOOGLE_SHEETS_BASE_URL" default:"https://sheets.googleapis.com/v4"`
		APIKey        string `envconfig:"GOOGLE_SHEETS_API_KEY"`
		SpreadsheetID string `envconfig:"REGISTRATION_SPREADSHEET_ID"`
		// LedgerRange starts below the header row on purpose.
		LedgerRange string `envconfig:"REGISTRATION_LEDGER_RANGE" default:"Registrations!A2:C"`
	}
	Printful struct {
		BaseURL string `envconfig:"PRINTFUL_BASE_URL" default:"https://api.printful.com"`
		APIKey  string `envconfig:"PRINTFUL_API_KEY"`
	}
	Locale struct {
		Timezone   string `envconfig:"DISPLAY_TIMEZONE" default:"Australia/Sydney"`
		DateLayout string `envconfig:"DISPLAY_DATE_LAYOUT" default:"02/01/2006"`
	}
	Rates struct {
		CacheTTL time.Duration `envconfig:"RATES_CACHE_TTL" default:"1h"`
	}
	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
		AllowedMethods []string `envconfig:"CORS_ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
		AllowedHeaders []string `envconfig:"CORS_ALLOWED_HEADERS" default:"Content-Type,X-API-Key"`
		MaxAge         int      `envconfig:"CORS_MAX_AGE" default:"600"`
	}
	Debug struct {
		Enabled        bool     `envconfig:"DEBUG_ENDPOINTS_ENABLED" default:"false"`
		APIKey         string   `envconfig:"DEBUG_API_KEY"`
		AllowedOrigins []string `envconfig:"DEBUG_ALLOWED_ORIGINS"`
	}
}

var (
	EnvFile = ".env"

	once sync.Once
	c    *Config
)

func Get() *Config {
	once.Do(func() {
		c = &Config{}
		if err := Init(EnvFile, c); err != nil {
			log.Fatalf("could not initialize configuration: %v", err)
		}
	})

	return c
}

// Init loads the env file when present and processes the environment into
// config. A missing env file is not an error; production runs on real env vars.
func Init(file string, config *Config) error {
	godotenv.Load(file)
	return envconfig.Process("", config)
}
