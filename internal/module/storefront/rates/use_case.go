package rates

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/stripe"
)

const baseCurrency = "AUD"

// quoteCurrencies are quoted one upstream call each; the base is always 1.0.
var quoteCurrencies = []string{"USD", "NZD", "EUR", "GBP"}

// minResolvedCurrencies guards against serving a half-empty table: anything
// less and the whole refresh is discarded in favour of the static fallback.
const minResolvedCurrencies = 5

var fallbackRates = map[string]float64{
	"AUD": 1.0,
	"USD": 0.65,
	"NZD": 1.08,
	"EUR": 0.60,
	"GBP": 0.51,
}

type GetRatesResponse struct {
	Rates     map[string]float64 `json:"rates"`
	Cached    bool               `json:"cached"`
	Timestamp time.Time          `json:"timestamp"`
}

type UseCase interface {
	GetRates(ctx context.Context) (GetRatesResponse, error)
}

type useCase struct {
	logger           *logrus.Logger
	timeout          time.Duration
	now              func() time.Time
	cache            *SnapshotCache
	stripeRepository stripe.Repository
}

type UseCaseProperty struct {
	Logger           *logrus.Logger
	Timeout          time.Duration
	Now              func() time.Time
	Cache            *SnapshotCache
	StripeRepository stripe.Repository
}

func NewUseCase(props UseCaseProperty) UseCase {
	now := props.Now
	if now == nil {
		now = time.Now
	}

	return &useCase{
		logger:           props.Logger,
		timeout:          props.Timeout,
		now:              now,
		cache:            props.Cache,
		stripeRepository: props.StripeRepository,
	}
}

// GetRates implements UseCase. It never fails: a stale cache triggers a
// refresh, and a refresh that resolves too few currencies degrades to the
// fallback table without caching it.
func (u *useCase) GetRates(ctx context.Context) (GetRatesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if snapshot, ok := u.cache.Get(); ok {
		return GetRatesResponse{
			Rates:     snapshot.Rates,
			Cached:    true,
			Timestamp: snapshot.FetchedAt,
		}, nil
	}

	resolved := map[string]float64{baseCurrency: 1.0}
	for _, currency := range quoteCurrencies {
		rate, err := u.stripeRepository.QuoteExchangeRate(ctx, baseCurrency, currency)
		if err != nil {
			u.logger.WithContext(ctx).WithError(err).WithField("currency", currency).Warn("skipping currency with failed quote")
			continue
		}
		resolved[currency] = rate
	}

	if len(resolved) < minResolvedCurrencies {
		u.logger.WithContext(ctx).WithField("resolved", len(resolved)).Warn("too few currencies resolved, serving fallback rates")

		fallback := make(map[string]float64, len(fallbackRates))
		for k, v := range fallbackRates {
			fallback[k] = v
		}

		return GetRatesResponse{
			Rates:     fallback,
			Cached:    false,
			Timestamp: u.now(),
		}, nil
	}

	snapshot := u.cache.Put(resolved)

	return GetRatesResponse{
		Rates:     snapshot.Rates,
		Cached:    false,
		Timestamp: snapshot.FetchedAt,
	}, nil
}
