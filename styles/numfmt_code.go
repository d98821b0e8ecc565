package styles

import "strings"

// FormatCode renders the definition into its canonical Excel format code.
// The function is total and deterministic; invalid definitions render as
// "General", matching the registration behavior.
func (nf NumberFormat) FormatCode() string {
	if !nf.valid() {
		return "General"
	}
	switch nf.Kind {
	case NumberFormatKindNumber:
		return numberCode(nf.Decimals, nf.Thousands)
	case NumberFormatKindCurrency:
		return nf.Symbol + numberCode(nf.Decimals, nf.Thousands)
	case NumberFormatKindPercentage:
		return numberCode(nf.Decimals, false) + "%"
	case NumberFormatKindScientific:
		return numberCode(nf.Decimals, false) + "E+00"
	case NumberFormatKindDate:
		return patternOr(nf.Pattern, DefaultDatePattern)
	case NumberFormatKindTime:
		return patternOr(nf.Pattern, DefaultTimePattern)
	case NumberFormatKindDateTime:
		return patternOr(nf.Pattern, DefaultDatePattern+" "+DefaultTimePattern)
	case NumberFormatKindText:
		return "@"
	case NumberFormatKindCustom:
		return nf.Code
	default:
		return "General"
	}
}

func numberCode(decimals int, thousands bool) string {
	base := "0"
	if thousands {
		base = "#,##0"
	}
	if decimals > 0 {
		base += "." + strings.Repeat("0", decimals)
	}
	return base
}

func patternOr(pattern, def string) string {
	if pattern != "" {
		return pattern
	}
	return def
}

// Currency glyphs the inverse codec recognizes.
var currencyMarkers = []string{"$", "¥", "€", "£"}

// ParseFormatCode classifies a raw format code into a structured definition.
// The classification is best effort and intentionally approximate: it
// reconstructs a human-meaningful definition from a stored code and is not
// an exact inverse of FormatCode for exotic codes, which fall through to
// Custom. The probe order is fixed: percentage, currency, scientific,
// date/time, text, number, custom.
func ParseFormatCode(code string) NumberFormat {
	if code == "" || code == "General" {
		return NumberFormat{}
	}

	if i := strings.Index(code, "%"); i >= 0 {
		return NumberFormat{
			Kind:     NumberFormatKindPercentage,
			Decimals: decimalsAfterDot(code[:i]),
		}
	}

	for _, sym := range currencyMarkers {
		if strings.Contains(code, sym) {
			return NumberFormat{
				Kind:      NumberFormatKindCurrency,
				Symbol:    sym,
				Thousands: strings.Contains(code, "#,##0"),
				Decimals:  decimalsAfterDot(code),
			}
		}
	}

	if strings.Contains(code, "E+") || strings.Contains(code, "e+") {
		return NumberFormat{
			Kind:     NumberFormatKindScientific,
			Decimals: scientificDecimals(code),
		}
	}

	// Date/time tokens. "mm" is ambiguous (month vs minute): treat it as a
	// month only when no time token claims it.
	lc := strings.ToLower(code)
	hasTime := strings.Contains(lc, "hh") || strings.Contains(lc, "ss")
	hasDate := strings.Contains(lc, "yy") || strings.Contains(lc, "dd") ||
		(strings.Contains(lc, "mm") && !hasTime)
	switch {
	case hasDate && hasTime:
		return NumberFormat{Kind: NumberFormatKindDateTime, Pattern: code}
	case hasDate:
		return NumberFormat{Kind: NumberFormatKindDate, Pattern: code}
	case hasTime:
		return NumberFormat{Kind: NumberFormatKindTime, Pattern: code}
	}

	if strings.Contains(code, "@") {
		return NumberFormat{Kind: NumberFormatKindText}
	}

	if strings.ContainsAny(code, "#0") {
		return NumberFormat{
			Kind:      NumberFormatKindNumber,
			Thousands: strings.Contains(code, "#,##0"),
			Decimals:  decimalsAfterDot(code),
		}
	}

	return NumberFormat{Kind: NumberFormatKindCustom, Code: code}
}

// decimalsAfterDot counts the consecutive '0' placeholders following the
// last '.' in the code.
func decimalsAfterDot(code string) int {
	dot := strings.LastIndex(code, ".")
	if dot < 0 {
		return 0
	}
	n := 0
	for _, r := range code[dot+1:] {
		if r != '0' {
			break
		}
		n++
	}
	return n
}

// scientificDecimals counts mantissa decimal places, ignoring the exponent
// digits after E+.
func scientificDecimals(code string) int {
	e := strings.IndexAny(code, "Ee")
	if e < 0 {
		return decimalsAfterDot(code)
	}
	return decimalsAfterDot(code[:e])
}
