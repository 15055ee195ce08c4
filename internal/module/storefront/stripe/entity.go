package stripe

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type TaxLineItem struct {
	// Amount is in minor units, the only unit stripe accepts.
	Amount    int64
	Reference string
}

type TaxCalculationRequest struct {
	Currency  string
	LineItems []TaxLineItem
	Address   Address
}

type TaxRateDetails struct {
	Country           string `json:"country"`
	State             string `json:"state"`
	PercentageDecimal string `json:"percentage_decimal"`
	TaxType           string `json:"tax_type"`
}

type TaxBreakdownItem struct {
	Amount           int64          `json:"amount"`
	TaxRateDetails   TaxRateDetails `json:"tax_rate_details"`
	TaxabilityReason string         `json:"taxability_reason"`
}

type TaxCalculationResponse struct {
	ID                 string             `json:"id"`
	AmountTotal        int64              `json:"amount_total"`
	Currency           string             `json:"currency"`
	TaxAmountExclusive int64              `json:"tax_amount_exclusive"`
	TaxAmountInclusive int64              `json:"tax_amount_inclusive"`
	TaxBreakdown       []TaxBreakdownItem `json:"tax_breakdown"`
}

type PaymentIntentRequest struct {
	// Amount is in minor units.
	Amount       int64
	Currency     string
	Metadata     map[string]string
	ReceiptEmail string
	Description  string
}

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type fxQuoteRate struct {
	ExchangeRate float64 `json:"exchange_rate"`
}

type fxQuoteResponse struct {
	ID    string                 `json:"id"`
	Rates map[string]fxQuoteRate `json:"rates"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
