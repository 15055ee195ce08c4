package purchase

type TaxLineItemRequest struct {
	Amount    string `json:"amount" validate:"required"`
	Reference string `json:"reference"`
}

type AddressRequest struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
}

type CustomerDetailsRequest struct {
	Address AddressRequest `json:"address" validate:"required"`
}

type CalculateTaxRequest struct {
	Currency        string                 `json:"currency"`
	LineItems       []TaxLineItemRequest   `json:"lineItems" validate:"required,min=1,dive"`
	CustomerDetails CustomerDetailsRequest `json:"customerDetails" validate:"required"`
}

type CreatePaymentIntentRequest struct {
	Amount       float64           `json:"amount" validate:"required,gt=0"`
	Currency     string            `json:"currency" validate:"required,len=3"`
	Metadata     map[string]string `json:"metadata"`
	ReceiptEmail string            `json:"receiptEmail" validate:"omitempty,email"`
	Description  string            `json:"description"`
}
