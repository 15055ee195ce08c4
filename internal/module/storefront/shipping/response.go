package shipping

type ShippingOptionResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Rate            float64 `json:"rate"`
	Currency        string  `json:"currency"`
	MinDeliveryDays int     `json:"minDeliveryDays,omitempty"`
	MaxDeliveryDays int     `json:"maxDeliveryDays,omitempty"`
}

type GetRatesResponse struct {
	ShippingOptions []ShippingOptionResponse `json:"shippingOptions"`
	CheapestOption  *ShippingOptionResponse  `json:"cheapestOption"`
}
