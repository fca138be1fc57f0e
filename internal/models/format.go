package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func currencySuffix(currency Currency, lang Language) string {
	if lang == LanguageArabic {
		switch currency {
		case CurrencySAR:
			return "ر.س"
		case CurrencyAED:
			return "د.إ"
		case CurrencyUSD:
			return "دولار"
		case CurrencyJOD:
			return "د.أ"
		}
		return ""
	}

	switch currency {
	case CurrencySAR:
		return "SAR"
	case CurrencyAED:
		return "AED"
	case CurrencyUSD:
		return "USD"
	case CurrencyJOD:
		return "JOD"
	}
	return ""
}

// FormatPrice renders a price with locale-aware digit grouping and the
// currency suffix the app shows for the active language.
func FormatPrice(price float64, currency Currency, lang Language) string {
	tag := language.English
	if lang == LanguageArabic {
		tag = language.Arabic
	}

	p := message.NewPrinter(tag)
	formatted := p.Sprintf("%v", number.Decimal(price))

	suffix := currencySuffix(currency, lang)
	if suffix == "" {
		return formatted
	}
	return formatted + " " + suffix
}
