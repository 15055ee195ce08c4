package printful

type Recipient struct {
	Address1    string `json:"address1"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
}

type Item struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type ShippingRateRequest struct {
	Recipient Recipient `json:"recipient"`
	Items     []Item    `json:"items"`
	Currency  string    `json:"currency,omitempty"`
}

// ShippingOption keeps Rate as the decimal string printful sends.
type ShippingOption struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Rate            string `json:"rate"`
	Currency        string `json:"currency"`
	MinDeliveryDays int    `json:"minDeliveryDays"`
	MaxDeliveryDays int    `json:"maxDeliveryDays"`
}

type shippingRateResponse struct {
	Code   int              `json:"code"`
	Result []ShippingOption `json:"result"`
}

type errorResponse struct {
	Code  int `json:"code"`
	Error struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}
