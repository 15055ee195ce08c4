package printful

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

type Repository interface {
	CalculateShipping(ctx context.Context, req ShippingRateRequest) ([]ShippingOption, error)
}

type repository struct {
	baseURL string
	apiKey  string
	logger  *logrus.Logger
	rc      *resty.Client
}

func NewRepository(baseURL, apiKey string, logger *logrus.Logger, rc *resty.Client) Repository {
	return &repository{
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
		rc:      rc,
	}
}

// CalculateShipping implements Repository.
func (r *repository) CalculateShipping(ctx context.Context, req ShippingRateRequest) ([]ShippingOption, error) {
	if r.apiKey == "" {
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "printful is not configured")
	}

	result := shippingRateResponse{}
	apiError := errorResponse{}

	resp, err := r.rc.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", r.apiKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		SetError(&apiError).
		Post(r.baseURL + "/shipping/rates")
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while quoting shipping rates through printful")
	}

	if resp.IsError() {
		message := apiError.Error.Message
		if message == "" {
			message = resp.String()
		}
		r.logger.WithContext(ctx).WithError(fmt.Errorf(message)).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, fmt.Sprintf("an error occurred while quoting shipping rates through printful: %s", message))
	}

	return result.Result, nil
}
