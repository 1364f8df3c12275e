package domain

// Currency represents a supported currency and its pricing metadata.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"`  // Primary Key (e.g., "USD")
	Name          string `json:"name"`          // e.g., "US Dollar"
	Symbol        string `json:"symbol"`        // e.g., "$"
	DecimalPlaces int32  `json:"decimalPlaces"` // 0 for yen-like currencies, 2 otherwise
	Region        string `json:"region"`        // e.g., "Europe"
	IsMajor       bool   `json:"isMajor"`       // Fixed liquidity set; drives the tightest spread tier
	IsEUMember    bool   `json:"isEUMember"`    // Non-euro EU currencies get the middle spread tier
	IsBase        bool   `json:"isBase"`        // Exactly one currency is the anchor at a time
	AuditFields
}
