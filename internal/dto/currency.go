package dto

// CreateCurrencyRequest adds a currency to the registry.
type CreateCurrencyRequest struct {
	CurrencyCode  string `json:"currencyCode" validate:"required,len=3,uppercase"`
	Name          string `json:"name" validate:"required"`
	Symbol        string `json:"symbol" validate:"required"`
	DecimalPlaces int32  `json:"decimalPlaces" validate:"gte=0,lte=4"`
	Region        string `json:"region"`
	IsMajor       bool   `json:"isMajor"`
	IsEUMember    bool   `json:"isEUMember"`
}
