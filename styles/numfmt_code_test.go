package styles

import "testing"

func TestFormatCode(t *testing.T) {
	tests := []struct {
		name string
		def  NumberFormat
		want string
	}{
		{"general", NumberFormat{}, "General"},
		{"integer", NumberFormat{Kind: NumberFormatKindNumber}, "0"},
		{"number 2dp", NumberFormat{Kind: NumberFormatKindNumber, Decimals: 2}, "0.00"},
		{"number thousands", NumberFormat{Kind: NumberFormatKindNumber, Thousands: true}, "#,##0"},
		{"number thousands 2dp", NumberFormat{Kind: NumberFormatKindNumber, Decimals: 2, Thousands: true}, "#,##0.00"},
		{"currency", NumberFormat{Kind: NumberFormatKindCurrency, Decimals: 2, Thousands: true, Symbol: "$"}, "$#,##0.00"},
		{"percentage", NumberFormat{Kind: NumberFormatKindPercentage, Decimals: 2}, "0.00%"},
		{"percentage integer", NumberFormat{Kind: NumberFormatKindPercentage}, "0%"},
		{"scientific", NumberFormat{Kind: NumberFormatKindScientific, Decimals: 2}, "0.00E+00"},
		{"scientific integer", NumberFormat{Kind: NumberFormatKindScientific}, "0E+00"},
		{"date default", NumberFormat{Kind: NumberFormatKindDate}, "yyyy-mm-dd"},
		{"date pattern", NumberFormat{Kind: NumberFormatKindDate, Pattern: "d-mmm-yy"}, "d-mmm-yy"},
		{"time default", NumberFormat{Kind: NumberFormatKindTime}, "hh:mm:ss"},
		{"datetime default", NumberFormat{Kind: NumberFormatKindDateTime}, "yyyy-mm-dd hh:mm:ss"},
		{"text", NumberFormat{Kind: NumberFormatKindText}, "@"},
		{"custom", NumberFormat{Kind: NumberFormatKindCustom, Code: "[Red]0.0"}, "[Red]0.0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.def.FormatCode(); got != tc.want {
				t.Errorf("FormatCode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want NumberFormat
	}{
		{"General", NumberFormat{}},
		{"", NumberFormat{}},
		{"0.00%", NumberFormat{Kind: NumberFormatKindPercentage, Decimals: 2}},
		{"0%", NumberFormat{Kind: NumberFormatKindPercentage}},
		{"$#,##0.00", NumberFormat{Kind: NumberFormatKindCurrency, Symbol: "$", Thousands: true, Decimals: 2}},
		{"€#,##0", NumberFormat{Kind: NumberFormatKindCurrency, Symbol: "€", Thousands: true}},
		{"0.00E+00", NumberFormat{Kind: NumberFormatKindScientific, Decimals: 2}},
		{"yyyy-mm-dd", NumberFormat{Kind: NumberFormatKindDate, Pattern: "yyyy-mm-dd"}},
		{"d-mmm-yy", NumberFormat{Kind: NumberFormatKindDate, Pattern: "d-mmm-yy"}},
		{"hh:mm:ss", NumberFormat{Kind: NumberFormatKindTime, Pattern: "hh:mm:ss"}},
		{"mmss.0", NumberFormat{Kind: NumberFormatKindTime, Pattern: "mmss.0"}},
		{"yyyy-mm-dd hh:mm:ss", NumberFormat{Kind: NumberFormatKindDateTime, Pattern: "yyyy-mm-dd hh:mm:ss"}},
		{"@", NumberFormat{Kind: NumberFormatKindText}},
		{"#,##0.00", NumberFormat{Kind: NumberFormatKindNumber, Thousands: true, Decimals: 2}},
		{"0", NumberFormat{Kind: NumberFormatKindNumber}},
		{"# ?/?", NumberFormat{Kind: NumberFormatKindNumber}},
		{";;;", NumberFormat{Kind: NumberFormatKindCustom, Code: ";;;"}},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			if got := ParseFormatCode(tc.code); got != tc.want {
				t.Errorf("ParseFormatCode(%q) = %+v, want %+v", tc.code, got, tc.want)
			}
		})
	}
}

// Color/locale-free definitions survive a generate-then-parse round trip
// with variant and decimal places intact. Custom and pattern-string formats
// are explicitly not required to round-trip exactly.
func TestFormatCodeRoundTrip(t *testing.T) {
	defs := []NumberFormat{
		{Kind: NumberFormatKindNumber, Decimals: 2},
		{Kind: NumberFormatKindCurrency, Decimals: 2, Thousands: true, Symbol: "$"},
		{Kind: NumberFormatKindPercentage, Decimals: 2},
		{Kind: NumberFormatKindScientific, Decimals: 2},
	}
	for _, def := range defs {
		got := ParseFormatCode(def.FormatCode())
		if got.Kind != def.Kind {
			t.Errorf("%s: round-trip kind %s, want %s", def.FormatCode(), got.Kind, def.Kind)
		}
		if got.Decimals != def.Decimals {
			t.Errorf("%s: round-trip decimals %d, want %d", def.FormatCode(), got.Decimals, def.Decimals)
		}
	}
}
