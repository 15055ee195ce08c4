package shipping

type RecipientRequest struct {
	Address1    string `json:"address1" validate:"required"`
	City        string `json:"city" validate:"required"`
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code" validate:"required,len=2"`
	Zip         string `json:"zip" validate:"required"`
}

type ItemRequest struct {
	VariantID int64 `json:"variant_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type GetRatesRequest struct {
	Recipient RecipientRequest `json:"recipient" validate:"required"`
	Items     []ItemRequest    `json:"items" validate:"required,min=1,dive"`
}
