package models

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"ar", LanguageArabic},
		{"en", LanguageEnglish},
		{"العربية", LanguageArabic},
		{"English", LanguageEnglish},
		{"", DefaultLanguage},
		{"fr", DefaultLanguage},
		{"ENGLISH", DefaultLanguage},
		{"garbage!!", DefaultLanguage},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.input); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  Currency
	}{
		{"sar", CurrencySAR},
		{"aed", CurrencyAED},
		{"usd", CurrencyUSD},
		{"jod", CurrencyJOD},
		{"ريال سعودي", CurrencySAR},
		{"درهم إماراتي", CurrencyAED},
		{"دولار أمريكي", CurrencyUSD},
		{"دينار أردني", CurrencyJOD},
		{"Saudi Riyal", CurrencySAR},
		{"UAE Dirham", CurrencyAED},
		{"US Dollar", CurrencyUSD},
		{"Jordanian Dinar", CurrencyJOD},
		{"", DefaultCurrency},
		{"eur", DefaultCurrency},
		{"SAR", DefaultCurrency},
	}

	for _, tt := range tests {
		if got := NormalizeCurrency(tt.input); got != tt.want {
			t.Errorf("NormalizeCurrency(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		input string
		want  Location
	}{
		{"riyadh", LocationRiyadh},
		{"jeddah", LocationJeddah},
		{"dammam", LocationDammam},
		{"mecca", LocationMecca},
		{"الرياض", LocationRiyadh},
		{"جدة", LocationJeddah},
		{"الدمام", LocationDammam},
		{"مكة", LocationMecca},
		{"Riyadh", LocationRiyadh},
		{"Jeddah", LocationJeddah},
		{"Dammam", LocationDammam},
		{"Mecca", LocationMecca},
		{"", DefaultLocation},
		{"abha", DefaultLocation},
	}

	for _, tt := range tests {
		if got := NormalizeLocation(tt.input); got != tt.want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseTheme(t *testing.T) {
	for _, valid := range []string{"light", "dark", "system"} {
		theme, ok := ParseTheme(valid)
		if !ok || string(theme) != valid {
			t.Errorf("ParseTheme(%q) = (%q, %v), want (%q, true)", valid, theme, ok, valid)
		}
	}

	for _, invalid := range []string{"", "Light", "auto", "night"} {
		if _, ok := ParseTheme(invalid); ok {
			t.Errorf("ParseTheme(%q) accepted, want rejected", invalid)
		}
	}
}

func TestParsePreferenceKey(t *testing.T) {
	for _, valid := range []string{"language", "currency", "location"} {
		key, ok := ParsePreferenceKey(valid)
		if !ok || string(key) != valid {
			t.Errorf("ParsePreferenceKey(%q) = (%q, %v), want (%q, true)", valid, key, ok, valid)
		}
	}

	if _, ok := ParsePreferenceKey("theme"); ok {
		t.Error("ParsePreferenceKey(\"theme\") accepted, want rejected")
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Language != "ar" || prefs.Currency != "sar" || prefs.Location != "riyadh" {
		t.Errorf("DefaultPreferences() = %+v, want ar/sar/riyadh", prefs)
	}
}
