package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Spark-Media-Group/moto-coach-sub001/config"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/calendar"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/debug"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/event"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/printful"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/purchase"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/rates"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/registration"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/shipping"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/stripe"
	internalMiddleware "github.com/Spark-Media-Group/moto-coach-sub001/internal/pkg/middleware"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/applogger"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/middleware"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/response"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/server"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/validator"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	validate := validator.Get()

	location, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		logger.WithError(err).Fatal("invalid display timezone")
	}

	rc := resty.New().SetTimeout(c.Application.Timeout)

	calendarRepo := calendar.NewRepository(c.GoogleCalendar.BaseURL, c.GoogleCalendar.APIKey, c.GoogleCalendar.CalendarID, location, logger, rc)
	registrationRepo := registration.NewRepository(c.GoogleSheets.BaseURL, c.GoogleSheets.APIKey, c.GoogleSheets.SpreadsheetID, c.GoogleSheets.LedgerRange, logger, rc)
	stripeRepo := stripe.NewRepository(c.Stripe.BaseURL, c.Stripe.SecretKey, logger, rc)
	printfulRepo := printful.NewRepository(c.Printful.BaseURL, c.Printful.APIKey, logger, rc)

	eventUseCase := event.NewUseCase(event.UseCaseProperty{
		Logger:                 logger,
		Timeout:                c.Application.Timeout,
		Location:               location,
		DateLayout:             c.Locale.DateLayout,
		CalendarRepository:     calendarRepo,
		RegistrationRepository: registrationRepo,
	})

	purchaseUseCase := purchase.NewUseCase(purchase.UseCaseProperty{
		Logger:           logger,
		Timeout:          c.Application.Timeout,
		PublishableKey:   c.Stripe.PublishableKey,
		StripeRepository: stripeRepo,
	})

	rateCache := rates.NewSnapshotCache(c.Rates.CacheTTL, time.Now)
	ratesUseCase := rates.NewUseCase(rates.UseCaseProperty{
		Logger:           logger,
		Timeout:          c.Application.Timeout,
		Cache:            rateCache,
		StripeRepository: stripeRepo,
	})

	shippingUseCase := shipping.NewUseCase(shipping.UseCaseProperty{
		Logger:             logger,
		Timeout:            c.Application.Timeout,
		PrintfulRepository: printfulRepo,
	})

	debugAccess := internalMiddleware.NewDebugAccess(c.Debug.Enabled, c.Debug.APIKey, c.Debug.AllowedOrigins)

	router := mux.NewRouter()
	router.Use(
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	event.InitHTTPHandler(router, validate, eventUseCase)
	purchase.InitHTTPHandler(router, validate, purchaseUseCase)
	rates.InitHTTPHandler(router, ratesUseCase)
	shipping.InitHTTPHandler(router, validate, shippingUseCase)
	debug.InitHTTPHandler(router, debugAccess, c.Application.Environment, debug.CollaboratorStatus{
		Stripe:             c.Stripe.SecretKey != "" && c.Stripe.PublishableKey != "",
		GoogleCalendar:     c.GoogleCalendar.APIKey != "" && c.GoogleCalendar.CalendarID != "",
		RegistrationLedger: c.GoogleSheets.APIKey != "" && c.GoogleSheets.SpreadsheetID != "",
		Printful:           c.Printful.APIKey != "",
	})

	router.MethodNotAllowedHandler = middleware.NewMethodNotAllowedHandler(router)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "not found")
	})

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins: c.CORS.AllowedOrigins,
			AllowedMethods: c.CORS.AllowedMethods,
			AllowedHeaders: c.CORS.AllowedHeaders,
			MaxAge:         c.CORS.MaxAge,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
}
