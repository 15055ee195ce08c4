package purchase

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/stripe"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

const defaultCurrency = "aud"

type UseCase interface {
	CalculateTax(ctx context.Context, req CalculateTaxRequest) (CalculateTaxResponse, error)
	CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (CreatePaymentIntentResponse, error)
	GetPublishableKey(ctx context.Context) (PublishableKeyResponse, error)
}

type useCase struct {
	logger           *logrus.Logger
	timeout          time.Duration
	publishableKey   string
	stripeRepository stripe.Repository
}

type UseCaseProperty struct {
	Logger           *logrus.Logger
	Timeout          time.Duration
	PublishableKey   string
	StripeRepository stripe.Repository
}

func NewUseCase(props UseCaseProperty) UseCase {
	return &useCase{
		logger:           props.Logger,
		timeout:          props.Timeout,
		publishableKey:   props.PublishableKey,
		stripeRepository: props.StripeRepository,
	}
}

// CalculateTax implements UseCase.
func (u *useCase) CalculateTax(ctx context.Context, req CalculateTaxRequest) (CalculateTaxResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	lineItems := make([]stripe.TaxLineItem, len(req.LineItems))
	for k, v := range req.LineItems {
		amount, err := toMinorUnits(v.Amount)
		if err != nil {
			return CalculateTaxResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, fmt.Sprintf("invalid line item amount '%s'", v.Amount))
		}
		lineItems[k] = stripe.TaxLineItem{
			Amount:    amount,
			Reference: v.Reference,
		}
	}

	calc, err := u.stripeRepository.CreateTaxCalculation(ctx, stripe.TaxCalculationRequest{
		Currency:  currency,
		LineItems: lineItems,
		Address: stripe.Address{
			Line1:      req.CustomerDetails.Address.Line1,
			Line2:      req.CustomerDetails.Address.Line2,
			City:       req.CustomerDetails.Address.City,
			State:      req.CustomerDetails.Address.State,
			PostalCode: req.CustomerDetails.Address.PostalCode,
			Country:    req.CustomerDetails.Address.Country,
		},
	})
	if err != nil {
		return CalculateTaxResponse{}, err
	}

	resp := CalculateTaxResponse{}
	resp.PopulateFromEntity(calc)

	return resp, nil
}

// CreatePaymentIntent implements UseCase.
func (u *useCase) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (CreatePaymentIntentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	if _, ok := metadata["source"]; !ok {
		metadata["source"] = "website"
	}

	intent, err := u.stripeRepository.CreatePaymentIntent(ctx, stripe.PaymentIntentRequest{
		Amount:       int64(math.Round(req.Amount * 100)),
		Currency:     req.Currency,
		Metadata:     metadata,
		ReceiptEmail: req.ReceiptEmail,
		Description:  req.Description,
	})
	if err != nil {
		return CreatePaymentIntentResponse{}, err
	}

	return CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// GetPublishableKey implements UseCase.
func (u *useCase) GetPublishableKey(ctx context.Context) (PublishableKeyResponse, error) {
	if u.publishableKey == "" {
		return PublishableKeyResponse{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "stripe publishable key is not configured")
	}

	return PublishableKeyResponse{PublishableKey: u.publishableKey}, nil
}

// toMinorUnits converts a human-facing decimal amount string to the integer
// minor units stripe expects, rounding half away from zero.
func toMinorUnits(amount string) (int64, error) {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("amount must be greater than zero")
	}

	return int64(math.Round(value * 100)), nil
}
