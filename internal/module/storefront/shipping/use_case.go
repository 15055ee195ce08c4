package shipping

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/printful"
)

type UseCase interface {
	GetRates(ctx context.Context, req GetRatesRequest) (GetRatesResponse, error)
}

type useCase struct {
	logger             *logrus.Logger
	timeout            time.Duration
	printfulRepository printful.Repository
}

type UseCaseProperty struct {
	Logger             *logrus.Logger
	Timeout            time.Duration
	PrintfulRepository printful.Repository
}

func NewUseCase(props UseCaseProperty) UseCase {
	return &useCase{
		logger:             props.Logger,
		timeout:            props.Timeout,
		printfulRepository: props.PrintfulRepository,
	}
}

// GetRates implements UseCase.
func (u *useCase) GetRates(ctx context.Context, req GetRatesRequest) (GetRatesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	items := make([]printful.Item, len(req.Items))
	for k, v := range req.Items {
		items[k] = printful.Item{
			VariantID: v.VariantID,
			Quantity:  v.Quantity,
		}
	}

	options, err := u.printfulRepository.CalculateShipping(ctx, printful.ShippingRateRequest{
		Recipient: printful.Recipient{
			Address1:    req.Recipient.Address1,
			City:        req.Recipient.City,
			StateCode:   req.Recipient.StateCode,
			CountryCode: req.Recipient.CountryCode,
			Zip:         req.Recipient.Zip,
		},
		Items: items,
	})
	if err != nil {
		return GetRatesResponse{}, err
	}

	resp := GetRatesResponse{
		ShippingOptions: make([]ShippingOptionResponse, 0, len(options)),
	}

	for _, option := range options {
		rate, err := strconv.ParseFloat(option.Rate, 64)
		if err != nil {
			u.logger.WithContext(ctx).WithError(err).WithField("option", option.ID).Warn("skipping shipping option with unparseable rate")
			continue
		}

		mapped := ShippingOptionResponse{
			ID:              option.ID,
			Name:            option.Name,
			Rate:            rate,
			Currency:        option.Currency,
			MinDeliveryDays: option.MinDeliveryDays,
			MaxDeliveryDays: option.MaxDeliveryDays,
		}
		resp.ShippingOptions = append(resp.ShippingOptions, mapped)

		if resp.CheapestOption == nil || mapped.Rate < resp.CheapestOption.Rate {
			cheapest := mapped
			resp.CheapestOption = &cheapest
		}
	}

	return resp, nil
}
