package models

type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

type Currency string

const (
	CurrencySAR Currency = "sar"
	CurrencyAED Currency = "aed"
	CurrencyUSD Currency = "usd"
	CurrencyJOD Currency = "jod"
)

type Location string

const (
	LocationRiyadh Location = "riyadh"
	LocationJeddah Location = "jeddah"
	LocationDammam Location = "dammam"
	LocationMecca  Location = "mecca"
)

type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

const (
	DefaultLanguage = LanguageArabic
	DefaultCurrency = CurrencySAR
	DefaultLocation = LocationRiyadh
)

// AppPreferences holds the three locale preferences. Each field is
// persisted under its own key.
type AppPreferences struct {
	Language Language `json:"language"`
	Currency Currency `json:"currency"`
	Location Location `json:"location"`
}

func DefaultPreferences() AppPreferences {
	return AppPreferences{
		Language: DefaultLanguage,
		Currency: DefaultCurrency,
		Location: DefaultLocation,
	}
}

// AppPreferenceKey names one of the locale preference slots.
type AppPreferenceKey string

const (
	PreferenceLanguage AppPreferenceKey = "language"
	PreferenceCurrency AppPreferenceKey = "currency"
	PreferenceLocation AppPreferenceKey = "location"
)

// The Normalize functions are total: stored values may be canonical
// tokens or human-readable labels written by an earlier app version,
// and anything unrecognized falls back to the default. They run on
// every read; writes persist canonical tokens only.

func NormalizeLanguage(value string) Language {
	switch value {
	case "ar", "en":
		return Language(value)
	case "العربية":
		return LanguageArabic
	case "English":
		return LanguageEnglish
	}
	return DefaultLanguage
}

func NormalizeCurrency(value string) Currency {
	switch value {
	case "sar", "aed", "usd", "jod":
		return Currency(value)
	case "ريال سعودي", "Saudi Riyal":
		return CurrencySAR
	case "درهم إماراتي", "UAE Dirham":
		return CurrencyAED
	case "دولار أمريكي", "US Dollar":
		return CurrencyUSD
	case "دينار أردني", "Jordanian Dinar":
		return CurrencyJOD
	}
	return DefaultCurrency
}

func NormalizeLocation(value string) Location {
	switch value {
	case "riyadh", "jeddah", "dammam", "mecca":
		return Location(value)
	case "الرياض", "Riyadh":
		return LocationRiyadh
	case "جدة", "Jeddah":
		return LocationJeddah
	case "الدمام", "Dammam":
		return LocationDammam
	case "مكة", "Mecca":
		return LocationMecca
	}
	return DefaultLocation
}

// ParseTheme reports whether value is a recognized theme token. Unlike
// the locale preferences there is no defaulting here: an unset or
// unrecognized theme means "no preference stored".
func ParseTheme(value string) (ThemePreference, bool) {
	switch value {
	case "light", "dark", "system":
		return ThemePreference(value), true
	}
	return "", false
}

// ParsePreferenceKey validates a preference slot name.
func ParsePreferenceKey(value string) (AppPreferenceKey, bool) {
	switch value {
	case "language", "currency", "location":
		return AppPreferenceKey(value), true
	}
	return "", false
}
