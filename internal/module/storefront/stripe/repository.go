package stripe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

type Repository interface {
	CreateTaxCalculation(ctx context.Context, req TaxCalculationRequest) (TaxCalculationResponse, error)
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntentResponse, error)
	QuoteExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
}

type repository struct {
	baseURL   string
	secretKey string
	logger    *logrus.Logger
	rc        *resty.Client
}

func NewRepository(baseURL, secretKey string, logger *logrus.Logger, rc *resty.Client) Repository {
	return &repository{
		baseURL:   baseURL,
		secretKey: secretKey,
		logger:    logger,
		rc:        rc,
	}
}

// CreateTaxCalculation implements Repository.
func (r *repository) CreateTaxCalculation(ctx context.Context, req TaxCalculationRequest) (TaxCalculationResponse, error) {
	if r.secretKey == "" {
		return TaxCalculationResponse{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "stripe is not configured")
	}

	form := url.Values{}
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("customer_details[address_source]", "billing")
	form.Set("customer_details[address][line1]", req.Address.Line1)
	if req.Address.Line2 != "" {
		form.Set("customer_details[address][line2]", req.Address.Line2)
	}
	form.Set("customer_details[address][city]", req.Address.City)
	form.Set("customer_details[address][state]", req.Address.State)
	form.Set("customer_details[address][postal_code]", req.Address.PostalCode)
	form.Set("customer_details[address][country]", req.Address.Country)

	for i, item := range req.LineItems {
		form.Set(fmt.Sprintf("line_items[%d][amount]", i), strconv.FormatInt(item.Amount, 10))
		if item.Reference != "" {
			form.Set(fmt.Sprintf("line_items[%d][reference]", i), item.Reference)
		}
	}

	result := TaxCalculationResponse{}

	if err := r.post(ctx, "/v1/tax/calculations", form, &result, "calculating tax"); err != nil {
		return TaxCalculationResponse{}, err
	}

	return result, nil
}

// CreatePaymentIntent implements Repository.
func (r *repository) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntentResponse, error) {
	if r.secretKey == "" {
		return PaymentIntentResponse{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "stripe is not configured")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
	if req.ReceiptEmail != "" {
		form.Set("receipt_email", req.ReceiptEmail)
	}
	if req.Description != "" {
		form.Set("description", req.Description)
	}

	result := PaymentIntentResponse{}

	if err := r.post(ctx, "/v1/payment_intents", form, &result, "creating payment intent"); err != nil {
		return PaymentIntentResponse{}, err
	}

	return result, nil
}

// QuoteExchangeRate implements Repository. One call quotes one currency pair.
func (r *repository) QuoteExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	if r.secretKey == "" {
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "stripe is not configured")
	}

	from := strings.ToLower(fromCurrency)

	form := url.Values{}
	form.Set("to_currency", strings.ToLower(toCurrency))
	form.Add("from_currencies[]", from)
	form.Set("lock_duration", "none")

	result := fxQuoteResponse{}

	if err := r.post(ctx, "/v1/fx_quotes", form, &result, "quoting exchange rate"); err != nil {
		return 0, err
	}

	quote, ok := result.Rates[from]
	if !ok || quote.ExchangeRate <= 0 {
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, fmt.Sprintf("stripe returned no quote for %s", fromCurrency))
	}

	return quote.ExchangeRate, nil
}

func (r *repository) post(ctx context.Context, path string, form url.Values, result interface{}, action string) error {
	apiError := errorResponse{}
	resp, err := r.rc.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", r.secretKey)).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(form.Encode()).
		SetResult(result).
		SetError(&apiError).
		Post(r.baseURL + path)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, fmt.Sprintf("an error occurred while %s through stripe", action))
	}

	if resp.IsError() {
		message := apiError.Error.Message
		if message == "" {
			message = resp.String()
		}
		r.logger.WithContext(ctx).WithError(fmt.Errorf(message)).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, fmt.Sprintf("an error occurred while %s through stripe: %s", action, message))
	}

	return nil
}
