package purchase

import "github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/stripe"

type TaxBreakdownResponse struct {
	Amount     float64 `json:"amount"`
	Percentage string  `json:"percentage"`
	TaxType    string  `json:"taxType"`
	Country    string  `json:"country"`
	State      string  `json:"state,omitempty"`
}

type CalculateTaxResponse struct {
	TaxAmount     float64                `json:"taxAmount"`
	TotalAmount   float64                `json:"totalAmount"`
	Currency      string                 `json:"currency"`
	TaxBreakdown  []TaxBreakdownResponse `json:"taxBreakdown"`
	CalculationID string                 `json:"calculationId,omitempty"`
}

func (r *CalculateTaxResponse) PopulateFromEntity(calc stripe.TaxCalculationResponse) {
	r.TaxAmount = float64(calc.TaxAmountExclusive) / 100
	r.TotalAmount = float64(calc.AmountTotal) / 100
	r.Currency = calc.Currency
	r.CalculationID = calc.ID

	breakdown := make([]TaxBreakdownResponse, len(calc.TaxBreakdown))
	for k, v := range calc.TaxBreakdown {
		breakdown[k] = TaxBreakdownResponse{
			Amount:     float64(v.Amount) / 100,
			Percentage: v.TaxRateDetails.PercentageDecimal,
			TaxType:    v.TaxRateDetails.TaxType,
			Country:    v.TaxRateDetails.Country,
			State:      v.TaxRateDetails.State,
		}
	}
	r.TaxBreakdown = breakdown
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type PublishableKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}
