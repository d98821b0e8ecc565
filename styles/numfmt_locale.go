package styles

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// currencyGlyphs maps ISO 4217 codes onto the glyphs the format-code codec
// understands. Currencies outside this set render with their ISO code and
// classify as Custom when parsed back.
var currencyGlyphs = map[string]string{
	"USD": "$",
	"JPY": "¥",
	"CNY": "¥",
	"EUR": "€",
	"GBP": "£",
}

// CurrencySymbolForTag returns the currency glyph for a BCP-47 language tag,
// e.g. "en-US" yields "$". Tags without a resolvable region currency fall
// back to "$".
func CurrencySymbolForTag(tag language.Tag) string {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return "$"
	}
	if glyph, ok := currencyGlyphs[unit.String()]; ok {
		return glyph
	}
	return unit.String() + " "
}

// CurrencyFormat builds a Currency definition with the symbol of the given
// locale.
func CurrencyFormat(tag language.Tag, decimals int, thousands bool) NumberFormat {
	return NumberFormat{
		Kind:      NumberFormatKindCurrency,
		Decimals:  decimals,
		Thousands: thousands,
		Symbol:    CurrencySymbolForTag(tag),
	}
}
