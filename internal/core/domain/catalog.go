package domain

// DefaultCatalog returns the seed currency set. EUR is flagged as the anchor
// by default; the registry service can move the flag via SetBaseCurrency.
func DefaultCatalog() []Currency {
	return []Currency{
		{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2, Region: "Europe", IsMajor: true, IsEUMember: true, IsBase: true},
		{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, Region: "North America", IsMajor: true},
		{CurrencyCode: "GBP", Name: "Pound Sterling", Symbol: "£", DecimalPlaces: 2, Region: "Europe", IsMajor: true},
		{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0, Region: "Asia", IsMajor: true},
		{CurrencyCode: "CHF", Name: "Swiss Franc", Symbol: "Fr", DecimalPlaces: 2, Region: "Europe", IsMajor: true},
		{CurrencyCode: "CAD", Name: "Canadian Dollar", Symbol: "C$", DecimalPlaces: 2, Region: "North America", IsMajor: true},
		{CurrencyCode: "AUD", Name: "Australian Dollar", Symbol: "A$", DecimalPlaces: 2, Region: "Oceania", IsMajor: true},
		{CurrencyCode: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", DecimalPlaces: 2, Region: "Oceania", IsMajor: true},
		{CurrencyCode: "SEK", Name: "Swedish Krona", Symbol: "kr", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "DKK", Name: "Danish Krone", Symbol: "kr", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "PLN", Name: "Polish Zloty", Symbol: "zł", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "CZK", Name: "Czech Koruna", Symbol: "Kč", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "HUF", Name: "Hungarian Forint", Symbol: "Ft", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "RON", Name: "Romanian Leu", Symbol: "lei", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "BGN", Name: "Bulgarian Lev", Symbol: "лв", DecimalPlaces: 2, Region: "Europe", IsEUMember: true},
		{CurrencyCode: "NOK", Name: "Norwegian Krone", Symbol: "kr", DecimalPlaces: 2, Region: "Europe"},
		{CurrencyCode: "ISK", Name: "Icelandic Krona", Symbol: "kr", DecimalPlaces: 0, Region: "Europe"},
		{CurrencyCode: "TRY", Name: "Turkish Lira", Symbol: "₺", DecimalPlaces: 2, Region: "Europe"},
		{CurrencyCode: "CNY", Name: "Chinese Yuan", Symbol: "¥", DecimalPlaces: 2, Region: "Asia"},
		{CurrencyCode: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", DecimalPlaces: 2, Region: "Asia"},
		{CurrencyCode: "SGD", Name: "Singapore Dollar", Symbol: "S$", DecimalPlaces: 2, Region: "Asia"},
		{CurrencyCode: "KRW", Name: "South Korean Won", Symbol: "₩", DecimalPlaces: 0, Region: "Asia"},
		{CurrencyCode: "INR", Name: "Indian Rupee", Symbol: "₹", DecimalPlaces: 2, Region: "Asia"},
		{CurrencyCode: "THB", Name: "Thai Baht", Symbol: "฿", DecimalPlaces: 2, Region: "Asia"},
		{CurrencyCode: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", DecimalPlaces: 2, Region: "Asia"},
		{CurrencyCode: "ILS", Name: "Israeli New Shekel", Symbol: "₪", DecimalPlaces: 2, Region: "Middle East"},
		{CurrencyCode: "AED", Name: "UAE Dirham", Symbol: "د.إ", DecimalPlaces: 2, Region: "Middle East"},
		{CurrencyCode: "ZAR", Name: "South African Rand", Symbol: "R", DecimalPlaces: 2, Region: "Africa"},
		{CurrencyCode: "BRL", Name: "Brazilian Real", Symbol: "R$", DecimalPlaces: 2, Region: "South America"},
		{CurrencyCode: "MXN", Name: "Mexican Peso", Symbol: "Mex$", DecimalPlaces: 2, Region: "North America"},
	}
}
