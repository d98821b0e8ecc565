package styles

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNumberFormatIDRange(t *testing.T) {
	r := newNumberFormatRegistry()

	if id := r.Register(NumberFormat{}); id != 0 {
		t.Errorf("General: id %d, want 0", id)
	}

	// Definitions rendering into built-in codes return the reserved ids.
	builtins := []struct {
		def  NumberFormat
		want uint32
	}{
		{NumberFormat{Kind: NumberFormatKindNumber}, 1},
		{NumberFormat{Kind: NumberFormatKindNumber, Decimals: 2}, 2},
		{NumberFormat{Kind: NumberFormatKindNumber, Thousands: true}, 3},
		{NumberFormat{Kind: NumberFormatKindNumber, Decimals: 2, Thousands: true}, 4},
		{NumberFormat{Kind: NumberFormatKindPercentage}, 9},
		{NumberFormat{Kind: NumberFormatKindPercentage, Decimals: 2}, 10},
		{NumberFormat{Kind: NumberFormatKindScientific, Decimals: 2}, 11},
		{NumberFormat{Kind: NumberFormatKindDate}, 14},
		{NumberFormat{Kind: NumberFormatKindTime}, 21},
		{NumberFormat{Kind: NumberFormatKindText}, 49},
	}
	for _, tc := range builtins {
		if id := r.Register(tc.def); id != tc.want {
			t.Errorf("%s: id %d, want %d", tc.def.FormatCode(), id, tc.want)
		}
	}

	// Custom allocation is monotonic from 164 and stable per code.
	dollar := NumberFormat{Kind: NumberFormatKindCurrency, Decimals: 2, Thousands: true, Symbol: "$"}
	euro := NumberFormat{Kind: NumberFormatKindCurrency, Decimals: 2, Thousands: true, Symbol: "€"}
	if id := r.Register(dollar); id != 164 {
		t.Errorf("first custom format: id %d, want 164", id)
	}
	if id := r.Register(euro); id != 165 {
		t.Errorf("second custom format: id %d, want 165", id)
	}
	if id := r.Register(dollar); id != 164 {
		t.Errorf("re-registered custom format: id %d, want 164", id)
	}
}

func TestNumberFormatValidationDegradesToGeneral(t *testing.T) {
	r := newNumberFormatRegistry()

	tests := []struct {
		name string
		def  NumberFormat
	}{
		{"negative decimals", NumberFormat{Kind: NumberFormatKindNumber, Decimals: -1}},
		{"decimals beyond 30", NumberFormat{Kind: NumberFormatKindNumber, Decimals: 31}},
		{"custom without code", NumberFormat{Kind: NumberFormatKindCustom}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if id := r.Register(tc.def); id != 0 {
				t.Errorf("id %d, want 0 (silently treated as General)", id)
			}
			if code := tc.def.FormatCode(); code != "General" {
				t.Errorf("FormatCode() = %q, want \"General\"", code)
			}
		})
	}
}

func TestNumberFormatDefinitionLookup(t *testing.T) {
	r := newNumberFormatRegistry()

	id := r.Register(NumberFormat{Kind: NumberFormatKindCurrency, Decimals: 2, Thousands: true, Symbol: "$"})
	def := r.Definition(id)
	if def.Kind != NumberFormatKindCurrency || def.Decimals != 2 || !def.Thousands || def.Symbol != "$" {
		t.Errorf("Definition(%d) = %+v, want the registered currency definition", id, def)
	}

	if def := r.Definition(0); def.Kind != NumberFormatKindGeneral {
		t.Errorf("Definition(0) = %+v, want General", def)
	}
	if def := r.Definition(2); def.Kind != NumberFormatKindNumber || def.Decimals != 2 {
		t.Errorf("Definition(2) = %+v, want Number with 2 decimals", def)
	}
	if def := r.Definition(9999); def.Kind != NumberFormatKindGeneral {
		t.Errorf("Definition(unknown) = %+v, want General", def)
	}
}

func TestCurrencySymbolForTag(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en-US", "$"},
		{"de-DE", "€"},
		{"ja-JP", "¥"},
		{"en-GB", "£"},
	}
	for _, tc := range tests {
		if got := CurrencySymbolForTag(language.MustParse(tc.tag)); got != tc.want {
			t.Errorf("CurrencySymbolForTag(%s) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}
